// Package tracklist reads tracklist exports and turns them into an ordered
// mapping from track title to track number.
//
// # Block Format
//
// The supported export (copied from a video playlist page) is a flat sequence
// of 9-line blocks:
//
//	1                  <- track number
//	<metadata>
//	<metadata>
//	<metadata>
//	Song Title         <- track title
//	<metadata>
//	<metadata>
//	<metadata>
//	                   <- blank separator
//
// Blocks whose title is empty or looks like view-count noise ("1,2 k vues",
// "3.4K views", "il y a 2 ans") are rejected and scanning resumes on the next
// line, which lets the parser recover when the export drifts by a line.
//
// # Usage
//
//	parser := tracklist.NewBlockParser()
//	list, err := tracklist.ParseFile(parser, "/music/Artist/Album/tracklist_from_youtube_playlist.txt")
//	if err != nil {
//	    return err
//	}
//	for _, entry := range list.Entries() {
//	    fmt.Printf("%02d. %s\n", entry.Number, entry.Title)
//	}
package tracklist
