package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_ToggleMode(t *testing.T) {
	m := NewModel(nil)
	assert.Equal(t, ModeTag, m.mode)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeRename, m.mode)
	assert.Contains(t, m.View(), "Rename by tracklist")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeTag, m.mode)
}

func TestModel_Options(t *testing.T) {
	m := NewModel(nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.True(t, m.playlist)
	assert.True(t, m.verbose)

	settings := m.runSettings()
	assert.True(t, settings.Tagging.CreatePlaylist)
	assert.True(t, settings.Verbose)
	assert.False(t, m.settings.Tagging.CreatePlaylist)
}

func TestModel_ProgressEvents(t *testing.T) {
	m := NewModel(nil)
	m.state = StateRunning

	m = update(t, m, ProgressMsg{Event: library.ProgressEvent{
		Message: "Processing album: A/B [No Year]...",
		Level:   library.LevelInfo,
		Album:   2,
		Albums:  4,
	}})
	assert.Equal(t, 4, m.albums)
	assert.Equal(t, 1, m.done)
	assert.InDelta(t, 0.25, m.percent(), 0.001)

	m = update(t, m, ProgressMsg{Event: library.ProgressEvent{Message: "detail", Level: library.LevelVerbose}})
	require.Len(t, m.logs, 1)
	assert.Equal(t, "Processing album: A/B [No Year]...", m.logs[0].Message)
}

func TestModel_LogsAreBounded(t *testing.T) {
	m := NewModel(nil)
	m.state = StateRunning
	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: library.ProgressEvent{Message: "x", Level: library.LevelInfo}})
	}
	assert.Len(t, m.logs, maxLogs)
}

func TestModel_Done(t *testing.T) {
	m := NewModel(nil)
	m.state = StateRunning

	done := update(t, m, DoneMsg{Stats: library.Stats{Albums: 1, Tagged: 3}})
	assert.Equal(t, StateComplete, done.state)
	assert.Contains(t, done.View(), "Tagged: 3")

	cancelled := update(t, m, DoneMsg{Err: context.Canceled})
	assert.Equal(t, StateError, cancelled.state)
	assert.ErrorIs(t, cancelled.err, errCancelled)

	failed := update(t, m, DoneMsg{Err: errors.New("boom")})
	assert.Equal(t, StateError, failed.state)
	assert.Contains(t, failed.View(), "boom")
}

func TestModel_RunsRenamePipeline(t *testing.T) {
	root := t.TempDir()
	album := filepath.Join(root, "Artist", "Album")
	require.NoError(t, os.MkdirAll(album, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(album, "song.mp3"), []byte("x"), 0o644))
	tracklist := "1\n\n3:00\n\nSong\nChannel\n10 views\n2 days ago\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(album, config.DefaultTracklistFile), []byte(tracklist), 0o644))

	m := NewModel(nil)
	m.mode = ModeRename
	m.textInput.SetValue(root)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateRunning, m.state)
	require.NotNil(t, m.events)

	events := m.events
	for msg := range events {
		m = update(t, m, msg)
	}

	assert.Equal(t, StateComplete, m.state)
	assert.Equal(t, 1, m.stats.Renamed)
	assert.FileExists(t, filepath.Join(album, "01. Song.mp3"))
}

func TestModel_MissingRoot(t *testing.T) {
	m := NewModel(nil)
	m.textInput.SetValue(filepath.Join(t.TempDir(), "missing"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	events := m.events
	for msg := range events {
		m = update(t, m, msg)
	}
	assert.Equal(t, StateError, m.state)
	assert.ErrorIs(t, m.err, library.ErrNotDirectory)
}

func TestModel_Reset(t *testing.T) {
	m := NewModel(nil)
	m.state = StateComplete
	m.logs = []LogEntry{{Message: "x"}}
	m.albums, m.done = 3, 3
	m.progress.SetPercent(1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	assert.Equal(t, StateInput, m.state)
	assert.Empty(t, m.logs)
	assert.Zero(t, m.albums)
	assert.Zero(t, m.progress.Percent())
	assert.NotNil(t, cmd)
}
