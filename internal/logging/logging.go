// Package logging sets up the process-wide structured logger. The dashboard
// owns stdout, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a config level name to a slog level. Unknown names are
// treated as info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Setup opens path for appending and installs a JSON logger as the slog
// default. The returned close func must be called on exit. If the file
// cannot be opened the logger discards and the error is returned alongside.
func Setup(path, level string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger := New(io.Discard, level)
		slog.SetDefault(logger)
		return logger, noop, fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600) //nolint:gosec // path comes from config
	if err != nil {
		logger := New(io.Discard, level)
		slog.SetDefault(logger)
		return logger, noop, fmt.Errorf("opening log file: %w", err)
	}

	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}
