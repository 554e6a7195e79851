package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores a request-scoped logger in the context.
// Middleware uses this to attach trace-enriched loggers.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContextOrDefault returns the request-scoped logger if one is set,
// falling back to the provided default.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return fallback
}
