// Package logger builds the charmbracelet/log terminal loggers used by the CLI.
// The HTTP server logs through zerolog instead.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a default charm log on stderr, so stdout stays free for
// results and the IPC stream.
func New(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false)
}

// NewWithConfig creates a charm log with explicit options.
func NewWithConfig(w io.Writer, prefix string, level log.Level, timestamps bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: timestamps,
		Formatter:       log.TextFormatter,
	})
}

// ParseLevel maps a LOG_LEVEL value to a charm level, defaulting to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
