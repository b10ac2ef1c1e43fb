// Copyright (c) 2026 Fondren Library. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// Using an unexported key type prevents collisions with third-party
// packages that also store per-request values in the context.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyOperator is the context key for the authenticated operator claims.
	KeyOperator key = "operator"

	// KeyLogger is the context key for the per-request *slog.Logger.
	KeyLogger key = "logger"
)
