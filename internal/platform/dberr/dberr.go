// Copyright (c) 2026 Fondren Library. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
)

// Postgres SQLSTATE classes we translate into client-facing errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is the standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict("A record with this value already exists")
		case codeForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		}
	}

	// Unknown query errors become internal server errors; the action tag
	// travels with the cause for log correlation.
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a storage failure with the repository action that
// produced it.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }
