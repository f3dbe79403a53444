// Package cli holds what the fill-mp3-tags and rename-mp3s commands share:
// the cobra command with its -d/--dir flag, the console printer for
// progress events, the summary table and the pause before exit.
package cli
