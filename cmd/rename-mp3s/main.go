// Command rename-mp3s renames MP3 files to "NN. Title.mp3" after the
// tracklist exported from a YouTube playlist into the album folder.
package main

import (
	"os"

	"github.com/handiism/mp3-organizer/internal/cli"
	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

func main() {
	tool := cli.Tool{
		Use:      "rename-mp3s",
		Short:    "Rename MP3 files by the tracklist found in each album folder",
		DirUsage: "root directory containing Artist/Album (Year)/Track structure",
		Action:   "Renamed",
		Count:    func(s library.Stats) int { return s.Renamed },
		New: func(settings *config.Settings, onProgress func(library.ProgressEvent)) cli.Pipeline {
			return library.NewRenamePipeline(settings, onProgress)
		},
	}

	os.Exit(cli.Execute(cli.NewCommand(tool, cli.DefaultEnv())))
}
