package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/angristan/frostlux/internal/config"
)

// Logger wraps slog.Logger together with the file it writes to.
//
// The terminal belongs to the TUI, so logs go to a file in the user cache
// directory unless configured otherwise.
//
// Thread Safety:
//   - All logging methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a Logger for cfg.
//
// cfg.File selects the destination: empty writes to DefaultPath, "-"
// writes to stderr, anything else is opened for appending.
func New(cfg config.LoggingConfig) (*Logger, error) {
	var output io.Writer
	var file *os.File

	switch cfg.File {
	case "-":
		output = os.Stderr
	default:
		path := cfg.File
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("locating log file: %w", err)
			}
			path = p
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		output, file = f, f
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})

	return &Logger{
		Logger: slog.New(handler),
		file:   file,
	}, nil
}

// DefaultPath returns $XDG_CACHE_HOME/frostlux/frostlux.log, falling back
// to ~/.cache.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "frostlux", "frostlux.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "frostlux", "frostlux.log"), nil
}

// ParseLevel converts a string log level to slog.Level.
//
// Supported levels: debug, info, warn, error
// Defaults to info if unrecognised.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
