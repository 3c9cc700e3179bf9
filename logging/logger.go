package logging

import (
	"io"
	"log"
)

// Classification is the severity of a log entry.
type Classification string

const (
	// Warn marks lossy or unexpected conditions that do not stop the command.
	Warn Classification = "WARN"
	// Debug marks diagnostic detail, shown only in verbose mode.
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

// Logf does nothing.
func (n Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library logger, and delegates logging to its
// Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a new StandardLogger that writes entries prefixed
// with the program name and no timestamp.
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "cbordump: ", 0),
	}
}

// Leveled forwards entries to Logger, dropping Debug entries unless Verbose
// is set.
type Leveled struct {
	Logger  Logger
	Verbose bool
}

// Logf forwards the entry if its classification is enabled.
func (l Leveled) Logf(classification Classification, format string, v ...interface{}) {
	if classification == Debug && !l.Verbose {
		return
	}
	l.Logger.Logf(classification, format, v...)
}
