// Package logging builds the application logger. The terminal belongs to the
// frontend while a game runs, so logs normally go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Stderr is the path value that selects standard error.
const Stderr = "-"

// New creates a logger writing to path at level. The returned closer
// releases the log file; it is a no-op for stderr.
func New(path, level, prefix string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	w, closer, err := open(path)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closer, nil
}

// FromConfig creates a logger from the log section of cfg.
func FromConfig(cfg config.LogConfig, prefix string) (*log.Logger, io.Closer, error) {
	return New(cfg.Path, cfg.Level, prefix)
}

func open(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == Stderr {
		return os.Stderr, nopCloser{}, nil
	}

	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
