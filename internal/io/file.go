package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/mp3-organizer/internal/model"
)

// ErrTargetExists is returned by SafeRename when the destination is taken
// by another file.
var ErrTargetExists = errors.New("target already exists")

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	multipleSpace = regexp.MustCompile(`\s+`)
)

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SubDirs returns the names of the directories directly inside dir,
// in lexicographic order.
func SubDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if isDirEntry(dir, entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// isDirEntry follows symlinks so that linked artist or album folders are walked.
func isDirEntry(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	return IsDir(filepath.Join(dir, entry.Name()))
}

// Files returns the names of the regular files directly inside dir accepted
// by keep, in lexicographic order. A nil keep accepts every file.
func Files(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if isDirEntry(dir, entry) {
			continue
		}
		if keep == nil || keep(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// MP3Files returns the full paths of the .mp3 files inside dir (extension
// compared case-insensitively), in lexicographic order.
func MP3Files(dir string) ([]string, error) {
	names, err := Files(dir, model.IsMP3)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// FindCover reads the first .jpg, .jpeg or .png file of dir.
//
// Returns nil without error when the folder holds no image.
func FindCover(dir string) (*model.CoverImage, error) {
	names, err := Files(dir, model.IsCoverFile)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, names[0]))
	if err != nil {
		return nil, fmt.Errorf("read cover %s: %w", names[0], err)
	}
	return model.NewCoverImage(names[0], data), nil
}

// SafeRename renames src to dst without ever replacing another file.
//
// If dst exists and is not src itself (e.g. a case-only rename on a
// case-insensitive file system), ErrTargetExists is returned and nothing is
// touched.
func SafeRename(src, dst string) error {
	if dstInfo, err := os.Stat(dst); err == nil {
		srcInfo, err := os.Stat(src)
		if err != nil {
			return err
		}
		if !os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("%s: %w", filepath.Base(dst), ErrTargetExists)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.Rename(src, dst)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multipleSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
