// Package log builds the slog loggers used by the CLI and the demo app.
package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/edward-ap/indicatorbar/internal/config"
)

// New creates a logger writing to w in the given format at level.
func New(w io.Writer, format config.LogFormat, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// FromEnv creates a logger configured by the INDICATORBAR_LOG_* variables.
// Tracing forces debug level so the trace lines are not filtered out.
func FromEnv(w io.Writer, env config.Env) *slog.Logger {
	level := env.LogLevel
	if env.TraceLog {
		level = "DEBUG"
	}
	return New(w, env.Format(), level)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
