// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Sorted directory listings (sub-directories, files, MP3 files)
//   - Album cover lookup
//   - Renaming without overwriting
//   - Filename sanitization for cross-platform compatibility
//   - Cover resizing
//
// # Directory Listings
//
//	artists, err := ioutils.SubDirs(root)
//	tracks, err := ioutils.MP3Files(albumDir)
//
// # Covers
//
// FindCover returns the first image of an album folder:
//
//	cover, err := ioutils.FindCover(albumDir) // nil when there is none
//
// # Renaming
//
//	err := ioutils.SafeRename(src, dst)
//	if errors.Is(err, ioutils.ErrTargetExists) {
//	    // dst belongs to another file, nothing was changed
//	}
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	small, _ := svc.FitCover(ctx, cover, 1000)
package ioutils
