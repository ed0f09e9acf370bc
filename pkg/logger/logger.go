package logger

import (
	"log/slog"
	"os"
)

// New возвращает логгер с заданным уровнем и форматом (text или json).
// Переменная окружения LOG_LEVEL имеет приоритет над аргументом.
func New(level, format string) *slog.Logger {
	lv := slog.LevelInfo
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lv = parsed
		}
	}
	opts := &slog.HandlerOptions{Level: lv}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
