// Package service contains the business logic layer.
//
// THE THREE LAYERS:
//
//	Handler (HTTP)     → parses requests, writes responses
//	Service (business) → validates inputs, applies rules
//	Repository (data)  → reads/writes SQLite
//
// Services accept primitives and return domain errors — they know nothing
// about HTTP, so the same logic could back a CLI or a different transport
// without change. Validation lives here, not in the handlers, because every
// caller needs it, not just the HTTP one.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
	"github.com/z1f7/832301306-contacts-backend/internal/auth"
	"github.com/z1f7/832301306-contacts-backend/internal/model"
	"github.com/z1f7/832301306-contacts-backend/internal/repository"
)

// AuthService handles registration and login.
//
// Dependencies (all injected via NewAuthService):
//   - users  repository.UserRepository → account storage
//   - hasher *auth.PasswordHasher      → plaintext → digest
//   - logger *slog.Logger              → structured logging
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	logger *slog.Logger
}

// NewAuthService creates an AuthService. Wire it in server.New.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new account.
//
// Validation is presence-only: both fields must be non-empty. No length
// limits, no character rules. The duplicate-username case is NOT pre-checked
// with a SELECT — the INSERT relies on the UNIQUE constraint, which is the
// only race-free way to detect it, and the repository maps the violation to
// a Conflict error.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, apperror.MissingField("username", "Username and password are required")
	}
	if password == "" {
		return nil, apperror.MissingField("password", "Username and password are required")
	}

	user := &model.User{
		Username:       username,
		PasswordDigest: s.hasher.Hash(password),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	s.logger.Info("user registered",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login authenticates a username/password pair and returns the account.
//
// The plaintext is hashed and the (username, digest) pair is matched in one
// repository lookup. A failed match is always the same InvalidCredentials
// error — the caller cannot distinguish "no such user" from "wrong
// password", which keeps the endpoint from leaking which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, apperror.MissingField("username", "Username and password are required")
	}
	if password == "" {
		return nil, apperror.MissingField("password", "Username and password are required")
	}

	user, err := s.users.FindByCredentials(ctx, username, s.hasher.Hash(password))
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	s.logger.Info("user logged in",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}
