// Package services contains server-side business logic. This file implements
// IdentityService, which handles account creation, login, and resolving
// bearer tokens to request identities.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"github.com/dmitrijs2005/phonebook/internal/server/auth"
	"github.com/dmitrijs2005/phonebook/internal/server/config"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
	"github.com/dmitrijs2005/phonebook/internal/server/repositories/users"
)

// TokenStatus tags the outcome of resolving a bearer token. Resolution is a
// total function: absence and invalidity are values, never panics.
type TokenStatus int

const (
	// TokenAbsent means no token was presented, or the token was valid but
	// its account no longer exists. The request proceeds anonymously.
	TokenAbsent TokenStatus = iota
	// TokenResolved means the token verified and the account was loaded.
	TokenResolved
	// TokenInvalid means the token failed signature or format checks.
	TokenInvalid
)

// Identity is the per-request authentication result. User is non-nil exactly
// when Status is TokenResolved.
type Identity struct {
	Status TokenStatus
	User   *models.User
}

// Anonymous reports whether no account is attached to the request.
func (id *Identity) Anonymous() bool {
	return id == nil || id.Status != TokenResolved
}

// IdentityService provides authentication-related operations:
// - Register: create accounts
// - Login: verify credentials and mint a token
// - ResolveToken: turn a raw bearer token into an Identity
type IdentityService struct {
	users          users.Repository
	jwtSecret      []byte
	tokenValidity  time.Duration
	signupPassword string
}

// NewIdentityService constructs an IdentityService using the account
// repository and server config.
func NewIdentityService(repo users.Repository, cfg *config.Config) *IdentityService {
	return &IdentityService{
		users:          repo,
		jwtSecret:      []byte(cfg.SecretKey),
		tokenValidity:  cfg.TokenValidityDuration,
		signupPassword: cfg.SignupPassword,
	}
}

// Register creates a new account. The schema carries no password argument,
// so the configured signup password is hashed into the account; login
// verifies against that per-account hash.
func (s *IdentityService) Register(ctx context.Context, username string) (*models.User, error) {
	hash, err := auth.HashPassword(s.signupPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash, FriendIDs: []string{}}
	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password against the account's stored hash and, on
// success, returns a signed token wrapping {username, id}. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ResolveToken resolves a raw bearer token to an Identity. An empty token is
// the anonymous state, not an error. A token whose account no longer exists
// also resolves to anonymous. The returned error is reserved for store
// failures.
func (s *IdentityService) ResolveToken(ctx context.Context, raw string) (*Identity, error) {
	if raw == "" {
		return &Identity{Status: TokenAbsent}, nil
	}

	claims, err := auth.ParseToken(raw, s.jwtSecret)
	if err != nil {
		return &Identity{Status: TokenInvalid}, nil
	}

	user, err := s.users.ByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &Identity{Status: TokenAbsent}, nil
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return &Identity{Status: TokenResolved, User: user}, nil
}
