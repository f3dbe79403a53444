package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/mp3-organizer/internal/config"
	ioutils "github.com/handiism/mp3-organizer/internal/io"
	"github.com/handiism/mp3-organizer/internal/match"
	"github.com/handiism/mp3-organizer/internal/tracklist"
)

// RenamePipeline renames loosely-named MP3 files to "NN. Title.mp3" using a
// tracklist export found in the album folder.
type RenamePipeline struct {
	settings *config.Settings
	parser   tracklist.Parser
	reporter
}

// NewRenamePipeline creates a RenamePipeline using the block tracklist parser.
//
// Nil settings fall back to config.DefaultSettings. onProgress may be nil.
func NewRenamePipeline(settings *config.Settings, onProgress func(ProgressEvent)) *RenamePipeline {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &RenamePipeline{
		settings: settings,
		parser:   tracklist.NewBlockParser(),
		reporter: reporter{onProgress: onProgress},
	}
}

// WithParser replaces the tracklist parser.
func (p *RenamePipeline) WithParser(parser tracklist.Parser) *RenamePipeline {
	p.parser = parser
	return p
}

// Run renames the tracks of every album under root that holds a tracklist file.
func (p *RenamePipeline) Run(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	if err := CheckRoot(root); err != nil {
		return stats, err
	}
	p.emit(LevelInfo, "Renaming MP3 files in %s ...", root)

	albums, err := NewWalker(root).Albums(ctx)
	if err != nil {
		return stats, err
	}

	var pending []AlbumDir
	for _, dir := range albums {
		if _, err := os.Stat(p.tracklistPath(dir)); err == nil {
			pending = append(pending, dir)
		}
	}

	for i, dir := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		p.albumHeader(i, len(pending), "Processing album: %s/%s ...", dir.Artist, dir.Folder.Raw)

		albumStats, err := p.RenameAlbum(dir)
		stats.Add(albumStats)
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *RenamePipeline) tracklistPath(dir AlbumDir) string {
	return filepath.Join(dir.Path, p.settings.Rename.TracklistFile)
}

// RenameAlbum renames the MP3 files of one album folder after its tracklist.
//
// Files already named "NN. ..." are left alone. A target name that is taken by
// another file is reported and skipped, never overwritten.
func (p *RenamePipeline) RenameAlbum(dir AlbumDir) (Stats, error) {
	stats := Stats{Albums: 1}

	files, err := ioutils.MP3Files(dir.Path)
	if err != nil {
		return stats, fmt.Errorf("list tracks of %s/%s: %w", dir.Artist, dir.Folder.Raw, err)
	}

	candidates, canonical := match.SplitCandidates(files)
	stats.AlreadyCanonical = len(canonical)
	if len(canonical) > 0 {
		p.emit(LevelInfo, "  Skipped %d already-renamed file(s)", len(canonical))
	}

	list, err := tracklist.ParseFile(p.parser, p.tracklistPath(dir))
	if err != nil {
		return stats, err
	}
	p.emit(LevelInfo, "  Found %d tracks in tracklist", list.Len())

	matcher := match.NewMatcher(candidates)
	for _, entry := range list.Entries() {
		source, ok := matcher.Find(entry.Title)
		if !ok {
			stats.Warnings++
			p.warnUnmatched(matcher, entry.Title)
			continue
		}

		title := entry.Title
		if p.settings.Rename.SanitizeTitles {
			title = ioutils.SanitizeFileName(title)
		}
		name := match.CanonicalName(entry.Number, title)
		target := filepath.Join(dir.Path, name)

		if err := ioutils.SafeRename(source, target); err != nil {
			if errors.Is(err, ioutils.ErrTargetExists) {
				stats.Warnings++
				p.emit(LevelWarning, "  Warning: %s already exists, skipping", name)
				continue
			}
			stats.Failed++
			p.emit(LevelError, "  Error renaming %s: %v", filepath.Base(source), err)
			continue
		}

		matcher.Consume(source)
		stats.Renamed++
		p.emit(LevelInfo, "  Renamed: %s -> %s", filepath.Base(source), name)
	}

	p.emit(LevelSuccess, "  Done! Renamed %d files.", stats.Renamed)
	return stats, nil
}

func (p *RenamePipeline) warnUnmatched(matcher *match.Matcher, title string) {
	if p.settings.Rename.SuggestClosest {
		threshold := float32(p.settings.Rename.SuggestThreshold)
		if closest, score, ok := matcher.Closest(title, threshold); ok {
			p.emit(LevelWarning, "  Warning: No matching MP3 file found for '%s' (closest: %s, %.0f%%)",
				title, filepath.Base(closest), score*100)
			return
		}
	}
	p.emit(LevelWarning, "  Warning: No matching MP3 file found for '%s'", title)
}
