// Copyright (c) 2026 Fondren Library. All rights reserved.

// Package ctxutil provides helpers for values stored in context.Context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/fondrenlibrary/name-authority/internal/platform/ctxkey"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
)

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context, falling back to the
// global default logger when the middleware has not run.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithOperator returns a new context with the authenticated operator claims.
func WithOperator(ctx context.Context, claims *sec.Claims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyOperator, claims)
}

// GetOperator retrieves the *sec.Claims from the context, or nil when the
// request is anonymous.
func GetOperator(ctx context.Context) *sec.Claims {
	claims, ok := ctx.Value(ctxkey.KeyOperator).(*sec.Claims)
	if !ok {
		return nil
	}
	return claims
}
