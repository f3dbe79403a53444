package tracklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parser turns the lines of a tracklist export into a Tracklist.
//
// Implementations receive lines already trimmed of surrounding whitespace.
type Parser interface {
	Parse(lines []string) *Tracklist
}

const (
	// blockSize is the number of lines of one entry, blank separator included.
	blockSize = 9

	// titleOffset is the position of the title relative to the track number.
	titleOffset = 4
)

// noiseMarkers are lower-case substrings identifying metadata lines that
// landed in the title slot (view counts and upload dates, French and English).
var noiseMarkers = []string{"vues", "views", "il y a"}

// BlockParser parses the fixed 9-line block export.
//
// A line made only of digits starts a block when the line 4 positions below
// it exists. The block is accepted when that line is a plausible title; the
// cursor then jumps a whole block. Otherwise it moves a single line.
type BlockParser struct{}

// NewBlockParser creates a BlockParser.
func NewBlockParser() *BlockParser {
	return &BlockParser{}
}

// Parse implements Parser.
func (p *BlockParser) Parse(lines []string) *Tracklist {
	list := New()

	for i := 0; i < len(lines); {
		if number, ok := parseTrackNumber(lines[i]); ok && i+titleOffset < len(lines) {
			title := lines[i+titleOffset]
			if isTitle(title) {
				list.Set(title, number)
				i += blockSize
				continue
			}
		}
		i++
	}

	return list
}

// parseTrackNumber accepts lines made only of ASCII digits. Other Unicode
// decimal digits, such as "٣", do not start a block.
func parseTrackNumber(line string) (int, bool) {
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isTitle(line string) bool {
	if line == "" {
		return false
	}
	lower := strings.ToLower(line)
	for _, marker := range noiseMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// ReadLines reads r as UTF-8 text and returns its lines trimmed of
// surrounding whitespace. A leading byte order mark is dropped.
func ReadLines(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	var lines []string
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseFile reads the tracklist at path and parses it with p.
func ParseFile(p Parser, path string) (*Tracklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tracklist: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read tracklist %s: %w", path, err)
	}
	return p.Parse(lines), nil
}
