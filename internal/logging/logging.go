// Package logging configures the shared application logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a level string to a log level, defaulting to info.
func ParseLevel(s string) log.Level {
	switch s {
	case "debug", "DEBUG":
		return log.DebugLevel
	case "info", "INFO":
		return log.InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return log.WarnLevel
	case "error", "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a leveled logger writing to w with millisecond timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

// Discard returns a logger that drops everything. Useful in tests and in
// TUI mode, where stderr writes would tear the alternate screen.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}
