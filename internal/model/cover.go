package model

import (
	"path/filepath"
	"strings"
)

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
)

// CoverImage is the album cover found in an album folder.
//
// An album has at most one cover. It is read once and attached identically
// to every track of the album.
type CoverImage struct {
	// FileName is the base name of the image file.
	FileName string

	// Data holds the raw image bytes.
	Data []byte

	// MIMEType is derived from the extension only.
	MIMEType string
}

// IsCoverFile reports whether name has a .jpg, .jpeg or .png extension, ignoring case.
func IsCoverFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// CoverMIMEType returns "image/png" for .png files and "image/jpeg" otherwise.
func CoverMIMEType(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return MIMEPNG
	}
	return MIMEJPEG
}

// NewCoverImage creates a CoverImage, deriving its MIME type from name.
func NewCoverImage(name string, data []byte) *CoverImage {
	return &CoverImage{
		FileName: name,
		Data:     data,
		MIMEType: CoverMIMEType(name),
	}
}
