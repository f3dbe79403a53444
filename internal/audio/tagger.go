package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bogem/id3v2/v2"
	"golang.org/x/text/encoding/unicode"

	"github.com/handiism/mp3-organizer/internal/model"
)

// TagVersion is the ID3v2 major version written to every file.
const TagVersion = 3

// coverDescription is the description of the attached picture frame.
const coverDescription = "Cover"

// ID3v2.3 frame IDs written by the Tagger.
const (
	frameArtist  = "TPE1"
	frameAlbum   = "TALB"
	frameTitle   = "TIT2"
	frameTrack   = "TRCK"
	frameYear    = "TYER"
	framePicture = "APIC"
)

// id3Magic starts every ID3v2 tag.
var id3Magic = []byte("ID3")

// TagConfig holds tagging configuration.
type TagConfig struct {
	// EmbedCover controls whether the album cover is written as an APIC frame.
	EmbedCover bool
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{EmbedCover: true}
}

// Tagger writes ID3v2.3 tags to MP3 files.
//
// Tagger writes the frames inferred from the library layout:
//   - TPE1 (artist), TALB (album), TIT2 (title)
//   - TRCK (track number, as written in the file name)
//   - TYER (year, only when known)
//   - APIC (front cover, replacing any previous cover)
//
// Files without a tag get a fresh one. Existing frames not listed above are kept.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	created, err := tagger.WriteTags(path, tags)
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", path, err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// WriteTags writes tags to the MP3 file at path.
//
// Returns true when the file had no ID3v2 tag and a new one was created.
// The file handle is released on every path, including failures.
func (t *Tagger) WriteTags(path string, tags model.TagSet) (bool, error) {
	tag, created, err := ensureTag(path)
	if err != nil {
		return false, err
	}
	defer tag.Close()

	tag.SetVersion(TagVersion)
	tag.SetDefaultEncoding(id3v2.EncodingISO)

	if err := t.updateTextFrames(tag, tags); err != nil {
		return created, err
	}

	if t.config.EmbedCover && tags.Cover != nil && len(tags.Cover.Data) > 0 {
		t.updateCover(tag, tags.Cover)
	}

	if err := tag.Save(); err != nil {
		return created, fmt.Errorf("save tags: %w", err)
	}
	return created, nil
}

// ensureTag opens the tag of path, preparing an empty one when the file has
// none. The returned bool reports whether the tag is new.
//
// Calling it repeatedly on a tagged file is a no-op apart from the open.
func ensureTag(path string) (*id3v2.Tag, bool, error) {
	has, err := HasTag(path)
	if err != nil {
		return nil, false, err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, false, fmt.Errorf("open tags: %w", err)
	}
	return tag, !has, nil
}

// HasTag reports whether the file at path starts with an ID3v2 tag header.
func HasTag(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(id3Magic))
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(header, id3Magic), nil
}

// updateTextFrames sets the text frames of tags.
func (t *Tagger) updateTextFrames(tag *id3v2.Tag, tags model.TagSet) error {
	frames := []struct{ id, text string }{
		{frameArtist, tags.Artist},
		{frameAlbum, tags.Album},
		{frameTitle, tags.Title},
		{frameTrack, tags.Track},
	}
	if tags.Year != "" {
		frames = append(frames, struct{ id, text string }{frameYear, tags.Year})
	}

	for _, f := range frames {
		frame, err := textFrame(f.text)
		if err != nil {
			return fmt.Errorf("encode %s: %w", f.id, err)
		}
		tag.DeleteFrames(f.id)
		tag.AddFrame(f.id, frame)
	}
	return nil
}

// textFrame returns a text frame body for text.
//
// Text that fits in Latin-1 is stored as ISO-8859-1. Anything else is stored
// as UTF-16 with a byte order mark, built here so the body always holds an
// even number of text bytes.
func textFrame(text string) (id3v2.Framer, error) {
	if isLatin1(text) {
		return id3v2.TextFrame{Encoding: id3v2.EncodingISO, Text: text}, nil
	}
	body, err := utf16Body(text)
	if err != nil {
		return nil, err
	}
	return id3v2.UnknownFrame{Body: body}, nil
}

func isLatin1(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r > 0xff {
			return false
		}
	}
	return true
}

// utf16Body encodes text as a UTF-16 text frame body: the encoding byte,
// a little-endian BOM and the text.
func utf16Body(text string) ([]byte, error) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	body := make([]byte, 0, 1+len(encoded))
	body = append(body, id3v2.EncodingUTF16.Key)
	return append(body, encoded...), nil
}

// updateCover embeds cover art as the front cover picture.
func (t *Tagger) updateCover(tag *id3v2.Tag, cover *model.CoverImage) {
	tag.DeleteFrames(framePicture)

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingISO,
		MimeType:    cover.MIMEType,
		PictureType: id3v2.PTFrontCover,
		Description: coverDescription,
		Picture:     cover.Data,
	}
	tag.AddAttachedPicture(pic)
}
