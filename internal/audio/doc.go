// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3v2.3 tags to MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	created, err := tagger.WriteTags(path, tags)
//
// Files without an ID3v2 tag get a new one; created reports when that
// happened. The tagger writes:
//   - Artist, Album, Title
//   - Track Number (verbatim), Year (when known)
//   - Cover Art (embedded front cover)
//
// # Playlist Generation
//
// Album playlists are written as M3U (optionally extended) or PLS:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.CreatePlaylist(album)
//	os.WriteFile(creator.PlaylistPath(album), []byte(content), 0644)
package audio
