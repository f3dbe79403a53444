package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/mp3-organizer/internal/io"
	"github.com/handiism/mp3-organizer/internal/model"
)

// PlaylistFormat is the file format of an album playlist.
type PlaylistFormat int

const (
	// FormatM3U writes an .m3u file, one track file name per line.
	FormatM3U PlaylistFormat = iota

	// FormatPLS writes an INI-style .pls file.
	FormatPLS
)

// ParsePlaylistFormat maps the tagging.playlist_format setting to a
// PlaylistFormat. Unknown values fall back to FormatM3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	if strings.EqualFold(strings.TrimSpace(s), "pls") {
		return FormatPLS
	}
	return FormatM3U
}

// Extension returns the file extension of the format, including the dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistCreator renders the playlist of a tagged album.
//
// Entries are the track file names, so the playlist only works from inside
// the album folder:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	os.WriteFile(creator.PlaylistPath(album), []byte(creator.CreatePlaylist(album)), 0o644)
type PlaylistCreator struct {
	format PlaylistFormat

	// extended adds the #EXTM3U header and #EXTINF lines to M3U output.
	extended bool
}

// NewPlaylistCreator creates a PlaylistCreator. extended only affects M3U.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{format: format, extended: extended}
}

// PlaylistPath returns where the playlist of album is written:
// the album directory, named after the album title.
func (p *PlaylistCreator) PlaylistPath(album *model.Album) string {
	name := album.Title
	if name == "" {
		name = "playlist"
	}
	return filepath.Join(album.Path, ioutils.SanitizeFileName(name)+p.format.Extension())
}

// CreatePlaylist renders the tracks of album in their current order.
// Track lengths are unknown and written as -1.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album) string {
	var sb strings.Builder

	switch p.format {
	case FormatPLS:
		sb.WriteString("[playlist]\n")
		for i, track := range album.Tracks {
			fmt.Fprintf(&sb, "File%d=%s\nTitle%d=%s\nLength%d=-1\n",
				i+1, filepath.Base(track.Path), i+1, track.Title, i+1)
		}
		fmt.Fprintf(&sb, "NumberOfEntries=%d\nVersion=2\n", len(album.Tracks))

	default:
		if p.extended {
			sb.WriteString("#EXTM3U\n")
		}
		for _, track := range album.Tracks {
			if p.extended {
				fmt.Fprintf(&sb, "#EXTINF:-1,%s - %s\n", album.Artist, track.Title)
			}
			sb.WriteString(filepath.Base(track.Path) + "\n")
		}
	}

	return sb.String()
}
