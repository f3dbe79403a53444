// Command fill-mp3-tags fills the ID3 tags of an Artist/Album/Track library
// from its folder and file names.
package main

import (
	"os"

	"github.com/handiism/mp3-organizer/internal/cli"
	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

func main() {
	tool := cli.Tool{
		Use:      "fill-mp3-tags",
		Short:    "Fill MP3 tags from directory structure and file names",
		DirUsage: "root directory containing Artist/Album/Track structure",
		Action:   "Tagged",
		Count:    func(s library.Stats) int { return s.Tagged },
		New: func(settings *config.Settings, onProgress func(library.ProgressEvent)) cli.Pipeline {
			return library.NewTagPipeline(settings, onProgress)
		},
	}

	os.Exit(cli.Execute(cli.NewCommand(tool, cli.DefaultEnv())))
}
