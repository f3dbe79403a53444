package library

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// mpegFrame is a single MPEG1 Layer3 frame without any tag.
func mpegFrame() []byte {
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	return frame
}

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeMP3(t *testing.T, dir, name string) string {
	t.Helper()
	return writeFile(t, filepath.Join(dir, name), mpegFrame())
}

// tracklistText renders entries in the 9-line block layout of a playlist export.
func tracklistText(titles ...string) string {
	var b strings.Builder
	for i, title := range titles {
		lines := []string{
			strconv.Itoa(i + 1),
			"",
			"3:45",
			"",
			title,
			"Some Channel",
			"1,2 M de vues",
			"il y a 3 ans",
			"",
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func fileNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// eventLog records progress events.
type eventLog struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (l *eventLog) record(e ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) messages(level ProgressLevel) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *eventLog) contains(level ProgressLevel, substr string) bool {
	for _, m := range l.messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
