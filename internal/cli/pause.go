package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/handiism/mp3-organizer/internal/config"
)

// PausePrompt is printed before waiting for the user.
const PausePrompt = "Press Enter to exit..."

// ShouldPause reports whether the tool waits for Enter before exiting.
// In auto mode it does so only when in is a terminal.
func ShouldPause(mode string, in io.Reader) bool {
	switch mode {
	case config.ModeAlways:
		return true
	case config.ModeNever:
		return false
	}
	return isTerminal(in)
}

// Pause prints PausePrompt and waits for a line on in.
func Pause(in io.Reader, out io.Writer) {
	fmt.Fprint(out, PausePrompt)
	_, _ = bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
}
