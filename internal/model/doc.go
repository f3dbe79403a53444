// Package model defines the core data structures used throughout
// mp3-organizer and the inference rules that derive them from names on disk.
//
// # Album Folders
//
// AlbumFolder splits an album directory name into a clean title and a year:
//
//	folder := model.ParseAlbumFolder("Greatest Hits (2024)")
//	fmt.Println(folder.CleanName) // "Greatest Hits"
//	fmt.Println(folder.Year)      // "2024"
//
// # Track Files
//
// TrackFile splits "<track>. <title>.mp3" file names:
//
//	tf, ok := model.SplitTrackFileName("07. My Song.mp3")
//	if !ok {
//	    // not a track, skip it
//	}
//	fmt.Println(tf.TrackPart, tf.TitlePart) // "07" "My Song"
//
// # Tag Sets
//
// BuildTagSet combines the artist folder, the album folder, the track file and
// the album cover into the TagSet handed to the tag writer.
package model
