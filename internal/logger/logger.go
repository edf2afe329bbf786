// Package logger configures the application's structured logger
package logger

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var errUnknownLevel = &apperr.Error{
	Message: "unknown log level: %s (must be debug, info, warn or error)",
}

// ParseLevel converts a level name from the config file into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level

	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return l, errUnknownLevel.Fmt(s)
	}

	return l, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewFile returns a JSON logger writing to a rotated file at path. The
// returned closer must be closed on exit.
func NewFile(path string, level slog.Level) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return New(w, level), w
}
