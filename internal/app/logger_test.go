package app

import (
	"log/slog"
	"testing"

	"github.com/eventlane/eventlane-backend/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		cfg := config.LogConfig{Level: "info", Format: format}
		if logger := NewLogger(cfg); logger == nil {
			t.Fatalf("NewLogger(%q) returned nil", format)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
