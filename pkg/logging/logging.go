package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is a leveled logger that also satisfies core.Logger
type Logger struct {
	*log.Logger
}

// New creates a logger writing to stderr. Verbose loggers include debug output.
func New(prefix string, verbose bool) *Logger {
	return NewWithWriter(os.Stderr, prefix, verbose)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, prefix string, verbose bool) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return &Logger{l}
}

// Printf logs at info level
func (l *Logger) Printf(format string, args ...interface{}) {
	l.Infof(format, args...)
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithWriter(io.Discard, "", false)
}
