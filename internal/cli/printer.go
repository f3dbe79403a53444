package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

// Printer writes progress events to a console.
type Printer struct {
	out     io.Writer
	verbose bool
	color   bool
	styles  map[library.ProgressLevel]lipgloss.Style
}

// NewPrinter creates a Printer for out following the verbose and ui.color settings.
func NewPrinter(out io.Writer, settings *config.Settings) *Printer {
	color := ShouldColor(settings.UI.Color, out)

	renderer := lipgloss.NewRenderer(out)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:     out,
		verbose: settings.Verbose,
		color:   color,
		styles: map[library.ProgressLevel]lipgloss.Style{
			library.LevelInfo:    renderer.NewStyle(),
			library.LevelVerbose: renderer.NewStyle().Foreground(lipgloss.Color("#6C757D")),
			library.LevelWarning: renderer.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
			library.LevelError:   renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
			library.LevelSuccess: renderer.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		},
	}
}

// ShouldColor decides whether output to w is colored.
//
// "always" and "never" are obeyed as is. "auto" colors terminals only, and
// not when NO_COLOR is set.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ModeAlways:
		return true
	case config.ModeNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Print writes event on its own line. Verbose events are dropped unless
// verbose output is enabled.
func (p *Printer) Print(event library.ProgressEvent) {
	if event.Level == library.LevelVerbose && !p.verbose {
		return
	}
	if event.Albums > 0 && event.Album > 1 {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, p.styles[event.Level].Render(event.Message))
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.Print(library.ProgressEvent{Message: fmt.Sprintf(format, args...), Level: library.LevelError})
}

// Summary prints the counters of a finished run as a table.
// done is the count shown next to action.
func (p *Printer) Summary(action string, done int, stats library.Stats) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, renderSummary(action, done, stats, p.color))
}

func renderSummary(action string, done int, stats library.Stats, color bool) string {
	rows := []table.Row{
		{"Albums", humanize.Comma(int64(stats.Albums))},
		{action, humanize.Comma(int64(done))},
	}
	if stats.Skipped > 0 {
		rows = append(rows, table.Row{"Skipped", humanize.Comma(int64(stats.Skipped))})
	}
	if stats.AlreadyCanonical > 0 {
		rows = append(rows, table.Row{"Already renamed", humanize.Comma(int64(stats.AlreadyCanonical))})
	}
	rows = append(rows,
		table.Row{"Warnings", humanize.Comma(int64(stats.Warnings))},
		table.Row{"Failed", humanize.Comma(int64(stats.Failed))},
	)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if color {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}
	tw.AppendHeader(table.Row{"Summary", "Count"})
	tw.AppendRows(rows)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
