package model

// TagSet is the metadata written to a single MP3 file.
//
// All values are inferred from the file's location:
//
//	<root>/<Artist>/<Album (Year)>/<Track>. <Title>.mp3
type TagSet struct {
	Artist string
	Album  string

	// Track is the track part of the file name, written verbatim.
	Track string
	Title string

	// Year is omitted from the file when empty.
	Year string

	// Cover is attached when non-nil.
	Cover *CoverImage
}

// BuildTagSet assembles the tags for one track of an album.
// This is a pure function; writing is done by a tag writer.
func BuildTagSet(artist string, folder AlbumFolder, tf TrackFile, cover *CoverImage) TagSet {
	return TagSet{
		Artist: artist,
		Album:  folder.CleanName,
		Track:  tf.TrackPart,
		Title:  tf.TitlePart,
		Year:   folder.Year,
		Cover:  cover,
	}
}
