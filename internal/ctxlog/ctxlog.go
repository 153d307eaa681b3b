// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger through context.Context.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to prevent collisions with other packages' context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when ctx
// carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}
