// Package services contains the access-controlled operations. Every
// operation takes the caller's principal (nil means "no valid token") and
// enforces the authorization rules before touching the stores. Checks run
// in a fixed order: authentication, then existence, then ownership.
package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/akarpov/gqltodo/internal/common"
	"github.com/akarpov/gqltodo/internal/server/auth"
	"github.com/akarpov/gqltodo/internal/server/config"
	"github.com/akarpov/gqltodo/internal/server/models"
	"github.com/akarpov/gqltodo/internal/server/store"
)

// AuthPayload bundles a freshly issued token with the password-free user
// projection, as returned by signup and login.
type AuthPayload struct {
	Token string
	User  *models.Principal
}

// UserService handles signup, login, and the authenticated "me" lookup.
type UserService struct {
	users         *store.Users
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService over the identity store using
// server config for token settings.
func NewUserService(users *store.Users, cfg *config.Config) *UserService {
	return &UserService{
		users:         users,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Signup registers a new account and issues a session token. A duplicate
// email fails with common.ErrEmailTaken and leaves the store untouched.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*AuthPayload, error) {
	user, err := s.users.Create(name, email, password)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{Token: token, User: user.Public()}, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password both fail with common.ErrInvalidCredentials so
// the response does not reveal which check failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	if !passwordsMatch(user.Password, password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{Token: token, User: user.Public()}, nil
}

// Me returns the stored projection of the authenticated caller.
func (s *UserService) Me(ctx context.Context, principal *models.Principal) (*models.Principal, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	user, ok := s.users.FindByID(principal.ID)
	if !ok {
		return nil, common.ErrNotFound
	}
	return user.Public(), nil
}

// Passwords are stored and compared verbatim; the constant-time compare
// only avoids adding a timing side-channel on top of that.
func passwordsMatch(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
