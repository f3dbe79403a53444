package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/handiism/mp3-organizer/internal/audio"
	"github.com/handiism/mp3-organizer/internal/config"
	ioutils "github.com/handiism/mp3-organizer/internal/io"
	"github.com/handiism/mp3-organizer/internal/model"
)

// TagWriter writes a tag set to an MP3 file.
//
// It reports whether the file had no tag before the write.
type TagWriter interface {
	WriteTags(path string, tags model.TagSet) (bool, error)
}

// TagPipeline fills the ID3 tags of every track in a library.
type TagPipeline struct {
	settings *config.Settings
	writer   TagWriter
	images   *ioutils.ImageService
	playlist *audio.PlaylistCreator
	reporter
}

// NewTagPipeline creates a TagPipeline.
//
// Nil settings fall back to config.DefaultSettings. onProgress may be nil.
func NewTagPipeline(settings *config.Settings, onProgress func(ProgressEvent)) *TagPipeline {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &TagPipeline{
		settings: settings,
		writer:   audio.NewTagger(&audio.TagConfig{EmbedCover: settings.Tagging.EmbedCover}),
		images:   ioutils.NewImageService(),
		playlist: audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.Tagging.PlaylistFormat), true),
		reporter: reporter{onProgress: onProgress},
	}
}

// WithWriter replaces the tag writer, mainly for tests.
func (p *TagPipeline) WithWriter(w TagWriter) *TagPipeline {
	p.writer = w
	return p
}

// Run tags every album under root.
//
// A missing root returns ErrNotDirectory before anything else is read.
// Listing errors end the run; per-file failures are reported and counted.
func (p *TagPipeline) Run(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	if err := CheckRoot(root); err != nil {
		return stats, err
	}
	p.emit(LevelInfo, "Filling MP3 tags in %s ...", root)

	albums, err := NewWalker(root).Albums(ctx)
	if err != nil {
		return stats, err
	}

	for i, dir := range albums {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		p.albumHeader(i, len(albums), "Processing album: %s...", albumLabel(dir))

		albumStats, err := p.TagAlbum(ctx, dir)
		stats.Add(albumStats)
		if err != nil {
			return stats, err
		}
	}

	p.emit(LevelSuccess, "Done! Tagged %d files in %d albums.", stats.Tagged, stats.Albums)
	return stats, nil
}

// TagAlbum tags the MP3 files of a single album folder.
func (p *TagPipeline) TagAlbum(ctx context.Context, dir AlbumDir) (Stats, error) {
	stats := Stats{Albums: 1}
	label := albumLabel(dir)

	cover := p.loadCover(ctx, dir, label, &stats)

	files, err := ioutils.MP3Files(dir.Path)
	if err != nil {
		return stats, fmt.Errorf("list tracks of %s: %w", label, err)
	}

	album := model.NewAlbum(dir.Artist, dir.Folder, dir.Path)
	for _, path := range files {
		tf, ok := model.SplitTrackFileName(filepath.Base(path))
		if !ok {
			stats.Skipped++
			p.emit(LevelVerbose, "Skipped: %s/%s (no track number)", label, filepath.Base(path))
			continue
		}

		tags := model.BuildTagSet(dir.Artist, dir.Folder, tf, cover)
		created, err := p.writer.WriteTags(path, tags)
		if err != nil {
			stats.Failed++
			p.emit(LevelError, "Error tagging %s/%s: %v", label, tf.FileName, err)
			continue
		}
		if created {
			p.emit(LevelVerbose, "Created ID3v2 tag: %s", tf.FileName)
		}

		stats.Tagged++
		album.AddTrack(model.NewTrack(dir.Path, tf))
		p.emit(LevelInfo, "Processed: %s/%s%s", label, tf.TitlePart, model.MP3Extension)
	}

	if p.settings.Tagging.CreatePlaylist && len(album.Tracks) > 0 {
		p.writePlaylist(album, &stats)
	}
	return stats, nil
}

// loadCover reads the album cover, shrinking it when configured.
// Failures are reported as warnings and leave the album without a cover.
func (p *TagPipeline) loadCover(ctx context.Context, dir AlbumDir, label string, stats *Stats) *model.CoverImage {
	if !p.settings.Tagging.EmbedCover {
		return nil
	}

	cover, err := ioutils.FindCover(dir.Path)
	if err != nil {
		stats.Warnings++
		p.emit(LevelWarning, "Warning: cannot read cover of %s: %v", label, err)
		return nil
	}
	if cover == nil {
		p.emit(LevelVerbose, "No cover found: %s", label)
		return nil
	}
	p.emit(LevelInfo, "Found cover: %s/%s", label, cover.FileName)
	p.emit(LevelVerbose, "Cover size: %s (%s)", humanize.Bytes(uint64(len(cover.Data))), cover.MIMEType)

	maxSize := p.settings.Tagging.CoverMaxSize
	if maxSize <= 0 {
		return cover
	}
	fitted, err := p.images.FitCover(ctx, cover, maxSize)
	if err != nil {
		stats.Warnings++
		p.emit(LevelWarning, "Warning: cannot resize cover %s, embedding it as is: %v", cover.FileName, err)
		return cover
	}
	if fitted != cover {
		p.emit(LevelVerbose, "Resized cover to fit %dx%d: %s", maxSize, maxSize,
			humanize.Bytes(uint64(len(fitted.Data))))
	}
	return fitted
}

func (p *TagPipeline) writePlaylist(album *model.Album, stats *Stats) {
	album.SortTracks()
	path := p.playlist.PlaylistPath(album)
	if err := os.WriteFile(path, []byte(p.playlist.CreatePlaylist(album)), 0o644); err != nil {
		stats.Failed++
		p.emit(LevelError, "Error writing playlist %s: %v", filepath.Base(path), err)
		return
	}
	p.emit(LevelVerbose, "Created playlist: %s", filepath.Base(path))
}

// albumLabel renders an album as "Artist/Album [Year]".
func albumLabel(dir AlbumDir) string {
	return fmt.Sprintf("%s/%s [%s]", dir.Artist, dir.Folder.CleanName, dir.Folder.YearLabel())
}
