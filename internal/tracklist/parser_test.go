package tracklist

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block builds one 9-line entry with the given number and title.
func block(number, title string) []string {
	return []string{
		number,
		"",
		"Some Channel",
		"•",
		title,
		"Some Channel",
		"1,2 k vues",
		"il y a 3 ans",
		"",
	}
}

func join(blocks ...[]string) []string {
	var lines []string
	for _, b := range blocks {
		lines = append(lines, b...)
	}
	return lines
}

func TestBlockParser_Blocks(t *testing.T) {
	lines := join(
		block("1", "Intro"),
		block("2", "Main Theme"),
		block("3", "Don't Stop"),
	)

	list := NewBlockParser().Parse(lines)

	assert.Equal(t, []Entry{
		{Number: 1, Title: "Intro"},
		{Number: 2, Title: "Main Theme"},
		{Number: 3, Title: "Don't Stop"},
	}, list.Entries())
}

func TestBlockParser_MetadataLinesAreIgnored(t *testing.T) {
	lines := []string{
		"12", "12", "views views", "il y a", "Real Title", "vues", "", "99", "",
	}

	list := NewBlockParser().Parse(lines)

	n, ok := list.Number("Real Title")
	require.True(t, ok)
	assert.Equal(t, 12, n)
	assert.Equal(t, 1, list.Len())
}

func TestBlockParser_NoiseTitleStepsOneLine(t *testing.T) {
	// The first number's title slot holds a view count. Stepping a whole
	// block would skip the real entry starting on the next line.
	lines := []string{
		"1",
		"2",
		"x",
		"x",
		"1.2K views",
		"Recovered",
		"x",
		"x",
		"x",
		"x",
	}

	list := NewBlockParser().Parse(lines)

	assert.Equal(t, []Entry{{Number: 2, Title: "Recovered"}}, list.Entries())
}

func TestBlockParser_RejectsNoiseCaseInsensitively(t *testing.T) {
	for _, title := range []string{"1.2K Views", "3 k VUES", "Il Y A 2 ans", ""} {
		lines := join(block("1", title))
		list := NewBlockParser().Parse(lines)
		assert.Zero(t, list.Len(), "title %q should be rejected", title)
	}
}

func TestBlockParser_ExtraLineBetweenBlocks(t *testing.T) {
	lines := join(
		block("1", "First"),
		[]string{"stray line"},
		block("2", "Second"),
	)

	list := NewBlockParser().Parse(lines)

	assert.Equal(t, []Entry{
		{Number: 1, Title: "First"},
		{Number: 2, Title: "Second"},
	}, list.Entries())
}

func TestBlockParser_TruncatedBlock(t *testing.T) {
	lines := join(block("1", "First"), []string{"2", "", "Channel", "•"})

	list := NewBlockParser().Parse(lines)

	assert.Equal(t, []Entry{{Number: 1, Title: "First"}}, list.Entries())
}

func TestBlockParser_NonDigitLinesNeverStartBlocks(t *testing.T) {
	lines := join(block("1a", "Nope"), block("-3", "Nope either"), block("٣", "Arabic digit"))

	list := NewBlockParser().Parse(lines)

	assert.Zero(t, list.Len())
}

func TestTracklist_DuplicateTitleLastWins(t *testing.T) {
	lines := join(
		block("1", "Intro"),
		block("2", "Song"),
		block("5", "Intro"),
	)

	list := NewBlockParser().Parse(lines)

	assert.Equal(t, []Entry{
		{Number: 5, Title: "Intro"},
		{Number: 2, Title: "Song"},
	}, list.Entries())
}

func TestReadLines_TrimsAndDropsBOM(t *testing.T) {
	input := "\ufeff1\r\n  padded  \r\n\ttabbed\n"

	lines, err := ReadLines(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "padded", "tabbed"}, lines)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracklist_from_youtube_playlist.txt")
	content := strings.Join(join(block("1", "Intro"), block("2", "Outro")), "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := ParseFile(NewBlockParser(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(NewBlockParser(), filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}
