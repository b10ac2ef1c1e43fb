// Package auth implements the operator login: environment-configured
// accounts exchanged for a signed bearer token.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/fondrenlibrary/name-authority/internal/platform/apperr"
	"github.com/fondrenlibrary/name-authority/internal/platform/constants"
	"github.com/fondrenlibrary/name-authority/internal/platform/sec"
	"github.com/fondrenlibrary/name-authority/internal/platform/validate"
)

// Account is one operator known to the service. Accounts come from the
// environment at startup; there is no user table.
type Account struct {
	Username     string
	PasswordHash string
	Role         sec.Role
}

type Service struct {
	accounts []Account
	tokens   *sec.TokenService
	logger   *slog.Logger
}

func NewService(accounts []Account, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		logger:   logger,
	}
}

// TokenResponse is the login payload returned to the operator.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login checks the credentials against the configured accounts and
// issues an access token. The password check runs even for unknown
// usernames so both failure paths cost the same.
func (service *Service) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	validator := &validate.Validator{}
	validator.Required("username", username)
	validator.Required("password", password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account := service.findAccount(username)
	if account == nil {
		sec.CheckPasswordHash(password, constants.DummyPasswordHash)
		service.logger.Warn("login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := service.tokens.GenerateAccessToken(account.Username, account.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded",
		slog.String("username", account.Username),
		slog.String("role", string(account.Role)),
	)

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Role:        string(account.Role),
		ExpiresAt:   time.Now().Add(constants.AccessTokenTTL),
	}, nil
}

func (service *Service) findAccount(username string) *Account {
	for i := range service.accounts {
		if service.accounts[i].Username == username {
			return &service.accounts[i]
		}
	}
	return nil
}
