package auth_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fondrenlibrary/name-authority/internal/auth"
	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
)

func newFixture(t *testing.T) *auth.Service {
	t.Helper()

	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "name.test.example.edu")
	require.NoError(t, err)

	accounts := []auth.Account{
		{Username: "curator", PasswordHash: hash, Role: sec.RoleEditor},
	}
	return auth.NewService(accounts, tokens, slog.Default())
}

func TestService_Login(t *testing.T) {
	service := newFixture(t)

	response, err := service.Login(context.Background(), "curator", "correct horse battery staple")
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, "editor", response.Role)
	assert.False(t, response.ExpiresAt.IsZero())
}

func TestService_Login_Failures(t *testing.T) {
	service := newFixture(t)

	tests := []struct {
		name     string
		username string
		password string
		code     string
	}{
		{"wrong_password", "curator", "nope", "UNAUTHORIZED"},
		{"unknown_user", "ghost", "whatever", "UNAUTHORIZED"},
		{"blank_credentials", "", "", "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}
