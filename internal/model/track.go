package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// MP3Extension is the only audio extension handled.
	MP3Extension = ".mp3"

	// trackSeparator splits "<track>. <title>" file names.
	trackSeparator = ". "
)

// TrackFile is an MP3 file name split into its track and title parts.
//
// Track files are expected to be named "<track>. <title>.mp3". The track part
// is kept as written in the file name ("01", "7", "A1") and is not renumbered.
//
// Example:
//
//	tf, ok := SplitTrackFileName("07. My Song.mp3")
//	// ok = true, tf.TrackPart = "07", tf.TitlePart = "My Song"
type TrackFile struct {
	// FileName is the base name of the file.
	FileName string

	// TrackPart is everything before the first ". ".
	TrackPart string

	// TitlePart is everything after the first ". ", without extension.
	TitlePart string
}

// IsMP3 reports whether name has a ".mp3" extension, ignoring case.
func IsMP3(name string) bool {
	return strings.EqualFold(filepath.Ext(name), MP3Extension)
}

// TrimMP3 removes a trailing ".mp3" (any case) from name.
func TrimMP3(name string) string {
	if IsMP3(name) {
		return name[:len(name)-len(MP3Extension)]
	}
	return name
}

// SplitTrackFileName splits a file name on the first ". " after removing the
// ".mp3" suffix.
//
// Returns false if the name has no separator; such files are not tracks and
// must be skipped by callers.
func SplitTrackFileName(name string) (TrackFile, bool) {
	stem := TrimMP3(name)
	track, title, ok := strings.Cut(stem, trackSeparator)
	if !ok {
		return TrackFile{}, false
	}
	return TrackFile{
		FileName:  name,
		TrackPart: track,
		TitlePart: title,
	}, true
}

// Track is a tagged track within an Album.
type Track struct {
	// Album is a reference to the parent album.
	Album *Album

	// Number is the numeric value of the track part, 0 if it is not a number.
	Number int

	// Title is the track title.
	Title string

	// Path is the full path of the MP3 file.
	Path string
}

// NewTrack creates a Track from a split file name located in dir.
func NewTrack(dir string, tf TrackFile) *Track {
	number, err := strconv.Atoi(strings.TrimSpace(tf.TrackPart))
	if err != nil {
		number = 0
	}
	return &Track{
		Number: number,
		Title:  tf.TitlePart,
		Path:   filepath.Join(dir, tf.FileName),
	}
}

// FormatTrackNumber zero-pads n to at least two digits.
func FormatTrackNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}
