// Package config provides configuration management for mp3-organizer.
//
// This package handles:
//   - Default configuration values
//   - Loading TOML settings files
//   - Validation of mode strings and numeric ranges
//
// # Default Settings
//
// Use DefaultSettings() to get the behaviour of a fresh install:
//
//	settings := config.DefaultSettings()
//	// Covers embedded as found, no playlists
//	// Renaming triggered by tracklist_from_youtube_playlist.txt
//	// Colors and pause-on-exit decided from the terminal
//
// # Loading from Files
//
//	settings, err := config.Load()
//	if err != nil {
//	    // a settings file exists but is malformed or invalid
//	}
//
// Load merges $XDG_CONFIG_HOME/mp3-organizer/config.toml and
// ./mp3-organizer.toml (the latter wins). Example file:
//
//	verbose = true
//
//	[tagging]
//	cover_max_size = 1000
//	create_playlist = true
//	playlist_format = "pls"
//
//	[rename]
//	suggest_threshold = 0.85
//
//	[ui]
//	pause_on_exit = "never"
package config
