// Copyright (c) 2026 Fondren Library. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/ctxutil"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
	"github.com/fondrenlibrary/name-authority/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target
// structure. Returns validate.ErrInvalidJSON if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// IntParam retrieves a named URL parameter and parses it as an integer
// row ID. Returns a validation error for non-numeric input.
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

// Operator extracts the authenticated operator claims from the request
// context. Returns nil if the request is anonymous.
func Operator(request *http.Request) *sec.Claims {
	return ctxutil.GetOperator(request.Context())
}

// IsEditor reports whether the request carries at least the editor role.
// Handlers use this to widen responses (e.g. include nonpublic notes).
func IsEditor(request *http.Request) bool {
	claims := ctxutil.GetOperator(request.Context())
	return claims != nil && sec.Role(claims.Role).AtLeast(sec.RoleEditor)
}
