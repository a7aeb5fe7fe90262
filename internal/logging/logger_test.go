package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angristan/frostlux/internal/config"
)

func TestNew_DefaultFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmpDir)

	logger, err := New(config.LoggingConfig{Level: "info"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("gateway session established", "session", "abc")
	logger.Debug("hidden")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "frostlux", "frostlux.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "gateway session established") || !strings.Contains(out, "session=abc") {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
}

func TestNew_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")

	logger, err := New(config.LoggingConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("visible")
	_ = logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "visible") {
		t.Errorf("expected debug output, got %s", data)
	}
}

func TestNew_Stderr(t *testing.T) {
	logger, err := New(config.LoggingConfig{File: "-"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close on stderr logger returned error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
