// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr)                         // level from LOG_LEVEL env
//	logging.SetupWithLevel(os.Stderr, slog.LevelDebug) // explicit level override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup configures logging at the level specified by the LOG_LEVEL env var
// (default: INFO).
func Setup(w io.Writer) *slog.Logger {
	return SetupWithLevel(w, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configures logging at the given level and installs the
// logger as the slog default.
// Colors are only emitted when w is a terminal.
func SetupWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}),
	)
	slog.SetDefault(logger)
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel maps a level name to a slog level.
// Unknown names map to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
