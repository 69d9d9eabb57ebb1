// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "mazegen",
	ReportTimestamp: true,
	TimeFormat:      time.TimeOnly,
	Level:           log.InfoLevel,
})

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, e.g. away from a terminal owned by the TUI.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Discard silences the logger.
func Discard() {
	logger.SetOutput(io.Discard)
}
