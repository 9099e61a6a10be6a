// Package users implements the credential store and the authentication
// service: registration with hashed passwords and login with token issuance.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/matchly/internal/common"
	"github.com/dmitrijs2005/matchly/internal/cryptox"
	"github.com/dmitrijs2005/matchly/internal/server/auth"
)

// Service orchestrates the two authentication flows:
// - Register: create a user with a salted password hash
// - Login: verify credentials and issue a signed token
//
// It holds no mutable state; every call is an independent unit of work.
type Service struct {
	repo   Repository
	issuer *auth.Issuer
}

func NewService(repo Repository, issuer *auth.Issuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
	}
}

// NormalizeUsername applies the fixed normalization contract: surrounding
// whitespace is trimmed and the result is lower-cased. Register and Login
// must use the same rule or registered accounts become unreachable.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a new user with the given username and password.
// Empty or whitespace-only values yield common.ErrorValidation before any
// store or crypto call; an existing username yields
// common.ErrorLoginAlreadyExists.
func (s *Service) Register(ctx context.Context, username string, password string) (*User, error) {

	username = NormalizeUsername(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrorValidation
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, common.ErrorLoginAlreadyExists
	}

	hash, salt, err := cryptox.DerivePassword([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	// The store enforces uniqueness; the Exists check above only closes the
	// common path, not the race.
	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			return nil, common.ErrorLoginAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored credential and, on success,
// returns a signed identity token. Unknown usernames and wrong passwords both
// yield common.ErrorUnauthorized; a corrupt stored credential propagates
// common.ErrCorruptCredential instead.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword([]byte(password), user.PasswordHash, user.PasswordSalt)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
