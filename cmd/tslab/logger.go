package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tslab",
	})
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

// tuiLogger keeps the alternate screen clean: it logs to logFile when one
// is given and discards everything otherwise.
func tuiLogger(level string) (*log.Logger, func(), error) {
	if logFile == "" {
		return newLogger(io.Discard, level), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, level), func() { f.Close() }, nil
}
