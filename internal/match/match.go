// Package match pairs tracklist titles with loosely-named MP3 files.
//
// Titles and file stems are compared through a normalized key: lower-cased,
// with apostrophes, spaces, periods and commas removed. Matching is exact on
// that key; there is no edit-distance fallback.
package match

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/mp3-organizer/internal/model"
	"github.com/hbollon/go-edlib"
)

// keyStripper deletes the characters ignored by Normalize.
var keyStripper = strings.NewReplacer("'", "", " ", "", ".", "", ",", "")

// canonicalPattern matches file names already in "NN. Title" form.
// Only ASCII digits count, which is what CanonicalName writes.
var canonicalPattern = regexp.MustCompile(`^\d{2}\. `)

// Normalize reduces s to its comparison key.
//
//	Normalize("Don't Stop") // "dontstop"
func Normalize(s string) string {
	return keyStripper.Replace(strings.ToLower(s))
}

// IsCanonical reports whether the base name of path starts with two digits,
// a period and a space.
func IsCanonical(path string) bool {
	return canonicalPattern.MatchString(filepath.Base(path))
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SplitCandidates separates paths into rename candidates and files that are
// already canonical. Order is preserved.
func SplitCandidates(paths []string) (candidates, canonical []string) {
	for _, p := range paths {
		if IsCanonical(p) {
			canonical = append(canonical, p)
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates, canonical
}

// Matcher finds the candidate file belonging to a tracklist title.
//
// Candidates are tried in the order given. A candidate can be consumed once
// it has been renamed so that it is not offered again.
type Matcher struct {
	candidates []string
	keys       []string
}

// NewMatcher creates a Matcher over candidate paths.
// Callers are expected to have removed canonical files with SplitCandidates.
func NewMatcher(candidates []string) *Matcher {
	m := &Matcher{
		candidates: make([]string, len(candidates)),
		keys:       make([]string, len(candidates)),
	}
	copy(m.candidates, candidates)
	for i, c := range candidates {
		m.keys[i] = Normalize(Stem(c))
	}
	return m
}

// Find returns the first candidate whose normalized stem equals the
// normalized title.
func (m *Matcher) Find(title string) (string, bool) {
	key := Normalize(title)
	for i, k := range m.keys {
		if k == key {
			return m.candidates[i], true
		}
	}
	return "", false
}

// Consume removes path from the candidates.
func (m *Matcher) Consume(path string) {
	for i, c := range m.candidates {
		if c == path {
			m.candidates = append(m.candidates[:i], m.candidates[i+1:]...)
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}

// Remaining returns the candidates not consumed yet.
func (m *Matcher) Remaining() []string {
	out := make([]string, len(m.candidates))
	copy(out, m.candidates)
	return out
}

// Closest returns the candidate most similar to title by Jaro-Winkler
// similarity on normalized keys, if that similarity reaches threshold.
//
// It is only meant for hints in warnings; renames are driven by Find.
func (m *Matcher) Closest(title string, threshold float32) (string, float32, bool) {
	key := Normalize(title)
	best, bestScore := "", float32(0)
	for i, k := range m.keys {
		score, err := edlib.StringsSimilarity(key, k, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = m.candidates[i], score
		}
	}
	if best == "" || bestScore < threshold {
		return "", 0, false
	}
	return best, bestScore, true
}

// CanonicalName returns the "NN. Title.mp3" file name for a track.
func CanonicalName(number int, title string) string {
	return model.FormatTrackNumber(number) + ". " + title + model.MP3Extension
}
