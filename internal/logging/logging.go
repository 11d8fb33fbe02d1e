package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithCtx stores a request-scoped logger in ctx.
func WithCtx(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx fetches the request-scoped logger or falls back to base.
func FromCtx(ctx context.Context, base *slog.Logger) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	if base != nil {
		return base
	}
	return slog.Default()
}
