// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "level selected", slog.String("level_name", name))
//
// Error logs carry the operation, the entity they concern and the full error
// chain:
//
//	logger.ErrorContext(ctx, "failed to import level",
//	    slog.String("operation", "ImportLevel"),
//	    slog.String("level_name", name),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New runs attributes through a masq redactor, so
// credentials such as the level repository API key never reach the output.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates a configured *slog.Logger.
//
// level is a slog level name such as "debug" or "warn" (case-insensitive;
// anything unparseable means info). format "text" selects slog.TextHandler, anything
// else JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactor(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts any name slog.Level understands ("warn", "DEBUG",
// "info+2"); anything else is info.
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
