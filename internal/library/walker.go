package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	ioutils "github.com/handiism/mp3-organizer/internal/io"
	"github.com/handiism/mp3-organizer/internal/model"
)

// ErrNotDirectory is returned when the library root is missing or is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// AlbumDir is an album folder found under an artist folder.
type AlbumDir struct {
	// Artist is the name of the enclosing artist folder.
	Artist string

	// Folder is the parsed album folder name.
	Folder model.AlbumFolder

	// Path is the album directory.
	Path string
}

// Walker lists the albums of a library root.
type Walker struct {
	root string
}

// NewWalker creates a Walker for root.
func NewWalker(root string) *Walker {
	return &Walker{root: root}
}

// CheckRoot returns ErrNotDirectory unless root is an existing directory.
func CheckRoot(root string) error {
	if root == "" || !ioutils.IsDir(root) {
		return fmt.Errorf("directory %s does not exist: %w", root, ErrNotDirectory)
	}
	return nil
}

// Albums returns every <root>/<artist>/<album> directory in lexicographic
// order of artist, then album. Files at both levels are ignored.
func (w *Walker) Albums(ctx context.Context) ([]AlbumDir, error) {
	if err := CheckRoot(w.root); err != nil {
		return nil, err
	}

	artists, err := ioutils.SubDirs(w.root)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	var albums []AlbumDir
	for _, artist := range artists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		artistPath := filepath.Join(w.root, artist)
		folders, err := ioutils.SubDirs(artistPath)
		if err != nil {
			return nil, fmt.Errorf("list albums of %s: %w", artist, err)
		}
		for _, folder := range folders {
			albums = append(albums, AlbumDir{
				Artist: artist,
				Folder: model.ParseAlbumFolder(folder),
				Path:   filepath.Join(artistPath, folder),
			})
		}
	}
	return albums, nil
}
