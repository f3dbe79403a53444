package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName names the per-user configuration directory.
	AppName = "mp3-organizer"

	// LocalFileName is the settings file looked up in the working directory.
	LocalFileName = "mp3-organizer.toml"

	// DefaultTracklistFile is the tracklist export that triggers renaming.
	DefaultTracklistFile = "tracklist_from_youtube_playlist.txt"
)

// ErrInvalidSetting is returned when a settings value is out of range.
var ErrInvalidSetting = errors.New("invalid setting")

// Mode values for ui.color and ui.pause_on_exit.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Settings holds all configuration options.
//
// The library root is deliberately absent: it comes from the command line
// and is passed to the pipelines explicitly.
type Settings struct {
	// Verbose shows per-file detail events.
	Verbose bool `koanf:"verbose"`

	Tagging TaggingSettings `koanf:"tagging"`
	Rename  RenameSettings  `koanf:"rename"`
	UI      UISettings      `koanf:"ui"`
}

// TaggingSettings configures the tag pipeline.
type TaggingSettings struct {
	EmbedCover     bool   `koanf:"embed_cover"`
	CoverMaxSize   int    `koanf:"cover_max_size"` // 0 keeps covers as they are
	CreatePlaylist bool   `koanf:"create_playlist"`
	PlaylistFormat string `koanf:"playlist_format"` // m3u or pls
}

// RenameSettings configures the rename pipeline.
type RenameSettings struct {
	TracklistFile    string  `koanf:"tracklist_file"`
	SanitizeTitles   bool    `koanf:"sanitize_titles"`
	SuggestClosest   bool    `koanf:"suggest_closest"`
	SuggestThreshold float64 `koanf:"suggest_threshold"`
}

// UISettings configures console output.
type UISettings struct {
	Color       string `koanf:"color"`         // auto, always, never
	PauseOnExit string `koanf:"pause_on_exit"` // auto, always, never
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Verbose: false,
		Tagging: TaggingSettings{
			EmbedCover:     true,
			CoverMaxSize:   0,
			CreatePlaylist: false,
			PlaylistFormat: "m3u",
		},
		Rename: RenameSettings{
			TracklistFile:    DefaultTracklistFile,
			SanitizeTitles:   false,
			SuggestClosest:   true,
			SuggestThreshold: 0.8,
		},
		UI: UISettings{
			Color:       ModeAuto,
			PauseOnExit: ModeAuto,
		},
	}
}

// Load reads settings from the default locations, lowest priority first:
//
//  1. $XDG_CONFIG_HOME/mp3-organizer/config.toml
//  2. ./mp3-organizer.toml
//
// Missing files are ignored and leave the defaults in place.
func Load() (*Settings, error) {
	return LoadFiles(searchPaths()...)
}

// LoadFiles reads settings from paths in order; later files override
// earlier ones. Paths that do not exist are skipped.
func LoadFiles(paths ...string) (*Settings, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	settings := DefaultSettings()
	if err := k.Unmarshal("", settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks value ranges and normalizes mode strings.
func (s *Settings) Validate() error {
	s.UI.Color = strings.ToLower(strings.TrimSpace(s.UI.Color))
	s.UI.PauseOnExit = strings.ToLower(strings.TrimSpace(s.UI.PauseOnExit))

	if !validMode(s.UI.Color) {
		return fmt.Errorf("ui.color %q: %w", s.UI.Color, ErrInvalidSetting)
	}
	if !validMode(s.UI.PauseOnExit) {
		return fmt.Errorf("ui.pause_on_exit %q: %w", s.UI.PauseOnExit, ErrInvalidSetting)
	}
	if s.Tagging.CoverMaxSize < 0 {
		return fmt.Errorf("tagging.cover_max_size %d: %w", s.Tagging.CoverMaxSize, ErrInvalidSetting)
	}
	switch strings.ToLower(s.Tagging.PlaylistFormat) {
	case "m3u", "pls":
	default:
		return fmt.Errorf("tagging.playlist_format %q: %w", s.Tagging.PlaylistFormat, ErrInvalidSetting)
	}
	if s.Rename.SuggestThreshold < 0 || s.Rename.SuggestThreshold > 1 {
		return fmt.Errorf("rename.suggest_threshold %v: %w", s.Rename.SuggestThreshold, ErrInvalidSetting)
	}
	if strings.TrimSpace(s.Rename.TracklistFile) == "" || filepath.Base(s.Rename.TracklistFile) != s.Rename.TracklistFile {
		return fmt.Errorf("rename.tracklist_file %q: %w", s.Rename.TracklistFile, ErrInvalidSetting)
	}
	return nil
}

func validMode(m string) bool {
	return m == ModeAuto || m == ModeAlways || m == ModeNever
}

func searchPaths() []string {
	var paths []string

	// Only used when present; SearchConfigFile fails otherwise.
	if path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.toml")); err == nil {
		paths = append(paths, path)
	}

	return append(paths, LocalFileName)
}
