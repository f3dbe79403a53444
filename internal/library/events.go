package library

import "fmt"

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	}
	return "unknown"
}

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Album and Albums are set on the event announcing an album:
	// its 1-based position and the number of albums in the run.
	Album  int
	Albums int
}

// reporter forwards events to an optional callback.
type reporter struct {
	onProgress func(ProgressEvent)
}

func (r reporter) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}

func (r reporter) emit(level ProgressLevel, format string, args ...any) {
	r.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: level})
}

func (r reporter) albumHeader(index, count int, format string, args ...any) {
	r.progress(ProgressEvent{
		Message: fmt.Sprintf(format, args...),
		Level:   LevelInfo,
		Album:   index + 1,
		Albums:  count,
	})
}
