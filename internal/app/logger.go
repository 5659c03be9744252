package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/eventlane/eventlane-backend/internal/config"
)

// NewLogger builds the process-wide logger from LogConfig and installs
// it as slog's default. Everything is written to stderr: "json" for log
// collectors, anything else falls back to the text handler with source
// locations for local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel understands the four standard level names in any case,
// plus slog's offset syntax ("warn+2"). Unknown input means info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
