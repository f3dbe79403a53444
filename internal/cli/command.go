package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/mp3-organizer/internal/config"
	"github.com/handiism/mp3-organizer/internal/library"
)

// Pipeline is a library pass started from the command line.
type Pipeline interface {
	Run(ctx context.Context, root string) (library.Stats, error)
}

// Tool describes one command line tool.
type Tool struct {
	// Use is the command name shown in the usage line.
	Use string

	Short string

	// DirUsage describes the -d/--dir flag.
	DirUsage string

	// Action names what the tool did in the summary, e.g. "Tagged".
	Action string

	// Count picks the counter reported next to Action.
	Count func(library.Stats) int

	// New builds the pipeline for a run.
	New func(settings *config.Settings, onProgress func(library.ProgressEvent)) Pipeline
}

// Env holds the streams and settings loader a command runs with.
type Env struct {
	In           io.Reader
	Out          io.Writer
	Err          io.Writer
	LoadSettings func() (*config.Settings, error)
}

// DefaultEnv uses the process streams and config.Load.
func DefaultEnv() Env {
	return Env{
		In:           os.Stdin,
		Out:          os.Stdout,
		Err:          os.Stderr,
		LoadSettings: config.Load,
	}
}

// reportedError marks errors the command already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// NewCommand builds the cobra command of tool.
//
// The only flags are -d/--dir, which is required, and -h/--help.
func NewCommand(tool Tool, env Env) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:           tool.Use + " -d <directory>",
		Short:         tool.Short,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), tool, env, dir)
		},
	}
	cmd.SetIn(env.In)
	cmd.SetOut(env.Out)
	cmd.SetErr(env.Err)

	cmd.Flags().StringVarP(&dir, "dir", "d", "", tool.DirUsage)
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func run(ctx context.Context, tool Tool, env Env, dir string) error {
	settings, err := env.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := NewPrinter(env.Out, settings)
	stats, runErr := tool.New(settings, printer.Print).Run(ctx, dir)

	switch {
	case errors.Is(runErr, library.ErrNotDirectory):
		printer.Errorf("ERROR: Directory %s does not exist", dir)
	case errors.Is(runErr, context.Canceled):
		printer.Errorf("Interrupted.")
	case runErr != nil:
		printer.Errorf("ERROR: %v", runErr)
	default:
		done := 0
		if tool.Count != nil {
			done = tool.Count(stats)
		}
		printer.Summary(tool.Action, done, stats)
	}

	if ShouldPause(settings.UI.PauseOnExit, env.In) {
		Pause(env.In, env.Out)
	}

	if runErr != nil {
		return reportedError{err: runErr}
	}
	return nil
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return 1
}
