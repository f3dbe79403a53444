// Package tui provides a Bubble Tea terminal user interface for mp3-organizer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 12

// errCancelled is shown when the user stops a run.
var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// Mode selects the pipeline to run.
type Mode int

const (
	ModeTag Mode = iota
	ModeRename
)

func (m Mode) String() string {
	if m == ModeRename {
		return "Rename by tracklist"
	}
	return "Fill tags"
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   library.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	mode      Mode
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc
	events <-chan tea.Msg

	// Album progress of the current run
	album  string
	albums int
	done   int
	stats  library.Stats

	// Options
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
// Nil settings fall back to config.DefaultSettings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		playlist:  settings.Tagging.CreatePlaylist,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries a pipeline event.
	ProgressMsg struct {
		Event library.ProgressEvent
	}

	// DoneMsg is sent when the pipeline returns.
	DoneMsg struct {
		Stats library.Stats
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateRunning
				cmd := m.startRun()
				return m, tea.Batch(cmd, m.spinner.Tick)
			}

		case "tab":
			if m.state == StateInput {
				if m.mode == ModeTag {
					m.mode = ModeRename
				} else {
					m.mode = ModeTag
				}
				return m, nil
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
				return m, nil
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				cmd := m.reset()
				return m, tea.Batch(cmd, textinput.Blink)
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.handleEvent(msg.Event), m.waitForEvent())

	case DoneMsg:
		m.stats = msg.Stats
		m.events = nil
		switch {
		case errors.Is(msg.Err, context.Canceled):
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.done = m.albums
			cmds = append(cmds, m.progress.SetPercent(1))
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleEvent records a pipeline event and advances the progress bar on
// album headers.
func (m *Model) handleEvent(event library.ProgressEvent) tea.Cmd {
	var cmd tea.Cmd
	if event.Albums > 0 {
		m.albums = event.Albums
		m.done = event.Album - 1
		m.album = event.Message
		cmd = m.progress.SetPercent(m.percent())
	}

	// Filter verbose messages if not in verbose mode
	if event.Level == library.LevelVerbose && !m.verbose {
		return cmd
	}
	m.logs = append(m.logs, LogEntry{
		Message: strings.TrimSpace(event.Message),
		Level:   event.Level,
	})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
	return cmd
}

func (m Model) percent() float64 {
	if m.albums == 0 {
		return 0
	}
	return float64(m.done) / float64(m.albums)
}

// reset returns the model to the input screen. The returned command
// animates the progress bar back to zero.
func (m *Model) reset() tea.Cmd {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.album = ""
	m.albums = 0
	m.done = 0
	m.stats = library.Stats{}
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return tea.Batch(m.textInput.Focus(), m.progress.SetPercent(0))
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♫ MP3 Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tag and rename an Artist/Album/Track library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Library root directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Mode: "))
	b.WriteString(albumStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	if m.mode == ModeTag {
		b.WriteString(fmt.Sprintf("  %s Create album playlist (ctrl+p)\n", playlistCheck))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Tracklist file: %s", m.settings.Rename.TracklistFile)))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(m.mode.String() + "..."))
	b.WriteString("\n\n")

	if m.album != "" {
		b.WriteString(albumStyle.Render("  ♪ " + strings.TrimPrefix(m.album, "Processing album: ")))
		b.WriteString("\n")
	}

	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Albums: %d/%d", m.done, m.albums)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	action, count := "Tagged", m.stats.Tagged
	if m.mode == ModeRename {
		action, count = "Renamed", m.stats.Renamed
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ %s Complete!\n\n"+
			"Albums: %s\n"+
			"%s: %s\n"+
			"Warnings: %s\n"+
			"Failed: %s",
		m.mode,
		humanize.Comma(int64(m.stats.Albums)),
		action, humanize.Comma(int64(count)),
		humanize.Comma(int64(m.stats.Warnings)),
		humanize.Comma(int64(m.stats.Failed)),
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case library.LevelError:
			style = errorStyle
			prefix = "✗"
		case library.LevelWarning:
			style = warningStyle
			prefix = "!"
		case library.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case library.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: switch mode • ctrl+p: playlist • ctrl+v: verbose • esc: quit"
	case StateRunning:
		return "esc: stop after current album"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// runSettings returns a copy of the settings with the screen options applied.
func (m Model) runSettings() *config.Settings {
	settings := *m.settings
	settings.Verbose = m.verbose
	settings.Tagging.CreatePlaylist = m.playlist
	return &settings
}

// startRun starts the selected pipeline on a background goroutine.
//
// Events and the final DoneMsg are delivered over a channel that is read one
// message at a time by waitForEvent.
func (m *Model) startRun() tea.Cmd {
	root := strings.TrimSpace(m.textInput.Value())
	settings := m.runSettings()
	ctx := m.ctx
	events := make(chan tea.Msg, 64)
	m.events = events

	onProgress := func(event library.ProgressEvent) {
		select {
		case events <- ProgressMsg{Event: event}:
		case <-ctx.Done():
		}
	}

	var pipeline interface {
		Run(ctx context.Context, root string) (library.Stats, error)
	}
	if m.mode == ModeRename {
		pipeline = library.NewRenamePipeline(settings, onProgress)
	} else {
		pipeline = library.NewTagPipeline(settings, onProgress)
	}

	go func() {
		defer close(events)
		stats, err := pipeline.Run(ctx, root)
		events <- DoneMsg{Stats: stats, Err: err}
	}()

	return m.waitForEvent()
}

// waitForEvent returns a command reading the next message of the current run.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
