package model

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// yearPattern finds a 19xx/20xx year anywhere in a folder name.
	yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

	// decoratedYearPattern matches a year together with the brackets and
	// whitespace surrounding it, e.g. " (2024)" or "[1999] ".
	// \p{Z} adds Unicode separators such as U+00A0 to RE2's ASCII-only \s.
	decoratedYearPattern = regexp.MustCompile(`[\(\[\s\p{Z}]*(19|20)\d{2}[\)\]\s\p{Z}]*`)
)

// AlbumFolder is an album directory name split into its album title and
// release year.
//
// Album folders usually mix both, e.g. "Greatest Hits (2024)" or
// "[1999] Live". ParseAlbumFolder separates them so the title can be written
// to the TALB frame and the year to TYER.
//
// Example:
//
//	folder := ParseAlbumFolder("Greatest Hits (2024)")
//	// folder.CleanName = "Greatest Hits"
//	// folder.Year = "2024"
type AlbumFolder struct {
	// Raw is the folder name as found on disk.
	Raw string

	// Year is the first 19xx/20xx token of Raw.
	// Empty string if the folder name carries no year.
	Year string

	// CleanName is Raw with every year token, its surrounding brackets and
	// whitespace removed, then trimmed.
	CleanName string
}

// ParseAlbumFolder extracts the year and the clean album name from a folder name.
//
// Only the first year-like token is used as the year, but every decorated
// year token is stripped from the name. When no year is present, CleanName is
// the trimmed folder name.
//
// ParseAlbumFolder never fails.
func ParseAlbumFolder(name string) AlbumFolder {
	return AlbumFolder{
		Raw:       name,
		Year:      yearPattern.FindString(name),
		CleanName: strings.TrimSpace(decoratedYearPattern.ReplaceAllString(name, "")),
	}
}

// HasYear returns true if a year was found in the folder name.
func (f AlbumFolder) HasYear() bool {
	return f.Year != ""
}

// YearLabel returns the year for display, or "No Year" when absent.
func (f AlbumFolder) YearLabel() string {
	if f.Year == "" {
		return "No Year"
	}
	return f.Year
}

// Album is an album that went through the tag pipeline.
//
// It is the input of the playlist writer: the tracks it holds are the ones
// that received tags, in the order they should be played.
type Album struct {
	// Artist is the name of the enclosing artist folder.
	Artist string

	// Title is the clean album name.
	Title string

	// Year is the release year, empty when unknown.
	Year string

	// Path is the album directory.
	Path string

	// Tracks contains the tagged tracks.
	Tracks []*Track
}

// NewAlbum creates an Album from an artist name, a parsed folder and its path.
func NewAlbum(artist string, folder AlbumFolder, path string) *Album {
	return &Album{
		Artist: artist,
		Title:  folder.CleanName,
		Year:   folder.Year,
		Path:   path,
	}
}

// AddTrack appends a track to the album.
func (a *Album) AddTrack(track *Track) {
	track.Album = a
	a.Tracks = append(a.Tracks, track)
}

// SortTracks orders tracks by number, falling back to file name for
// tracks sharing a number or without one.
func (a *Album) SortTracks() {
	sort.SliceStable(a.Tracks, func(i, j int) bool {
		ti, tj := a.Tracks[i], a.Tracks[j]
		if ti.Number != tj.Number {
			return ti.Number < tj.Number
		}
		return ti.Path < tj.Path
	})
}
