// Copyright (c) 2026 Fondren Library. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/ctxkey"
	"github.com/fondrenlibrary/name-authority/internal/platform/respond"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining it here decouples the middleware from the token service
// implementation, allowing mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.Claims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>'.
//  2. If absent, the request proceeds as anonymous — the public read
//     surface needs no credentials.
//  3. If present, parse and verify the JWT via TokenVerifier.
//  4. Inject *sec.Claims into the request context for downstream use.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(request.Context(), ctxkey.KeyOperator, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose operator doesn't hold the required role.
//
// Must be registered AFTER Authenticate. It implies an authentication
// check, so handlers never mount both.
func RequireRole(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := GetOperator(request.Context())

			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !sec.Role(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// GetOperator retrieves the *sec.Claims from the context, or nil for
// anonymous requests.
func GetOperator(ctx context.Context) *sec.Claims {
	claims, ok := ctx.Value(ctxkey.KeyOperator).(*sec.Claims)
	if !ok {
		return nil
	}
	return claims
}
