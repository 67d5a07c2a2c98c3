// Copyright (c) 2026 Daleel Balady. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// # Safety
//
// Keys use a private, unexported type so they can never collide with
// third-party packages that also use context for storage: Go's
// [context.Context] matches on both the value AND the type.
package ctxutil

import (
	"context"
	"log/slog"
)

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// keyRequestID is the context key for the X-Request-ID correlation value.
	keyRequestID key = "request_id"

	// keyLogger is the context key for the per-request [*log/slog.Logger].
	keyLogger key = "logger"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(keyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
