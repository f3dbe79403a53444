// Package library walks an Artist/Album music library and runs the tag and
// rename pipelines over it.
//
// # Layout
//
//	<root>/<Artist>/<Album Folder>/<files>
//
// Artists, albums and files are processed in lexicographic order, one at a
// time. A failure on one file is reported and the pipeline moves on; only a
// missing root or an unreadable directory ends a run.
//
// # Tag Pipeline
//
//	pipeline := library.NewTagPipeline(settings, func(event library.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	stats, err := pipeline.Run(ctx, "/music")
//
// For every "<track>. <title>.mp3" file it writes artist (artist folder),
// album and year (album folder), track, title and the album cover.
//
// # Rename Pipeline
//
//	pipeline := library.NewRenamePipeline(settings, onProgress)
//	stats, err := pipeline.Run(ctx, "/music")
//
// Albums holding a tracklist export get their loosely-named MP3 files renamed
// to "NN. Title.mp3". Files already named that way are never touched, so
// running it twice changes nothing the second time.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Album   int           // 1-based album position on album headers
//	    Albums  int           // album count on album headers
//	}
package library
