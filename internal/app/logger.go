package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as the
// slog default. Log lines go to w; Run passes os.Stderr so they never mix
// with rendered results on stdout.
//
// Format "json" is for machine consumption; anything else gets the text
// handler with source locations for development use.
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     parseLevel(cfg.Level),
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// parseLevel maps a config string to a slog level, case-insensitively.
// Unknown or empty values fall back to info.
func parseLevel(s string) slog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return slog.LevelInfo
}
