package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/avoronin/stockpile-backend/internal/config"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process-wide *slog.Logger from LogConfig and
// installs it as the default via slog.SetDefault.
//
// Format "json" writes structured JSON for production; anything else
// writes human-readable text with source locations for development.
// Level falls back to info when unrecognized. Output goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(cfg.Level))]
	if !ok {
		level = slog.LevelInfo
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}
