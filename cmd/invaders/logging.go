package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	}), nil
}

// openPlayLogger returns a logger that does not write to the terminal the UI
// owns: it appends to --log-file, or discards output when no file is set.
// The returned close function must be called when play ends.
func openPlayLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}
