// Package auth is the session codec: it turns a user into a signed, expiring
// token and a presented token back into a principal. It is the only place
// where bytes off the wire become an identity.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akarpov/gqltodo/internal/server/models"
)

// Claims carries the principal projection alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GenerateToken signs an HS256 token encoding the user's public projection
// with an absolute expiry of now + validity.
func GenerateToken(user *models.User, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})

	return token.SignedString(secretKey)
}

// PrincipalFromToken verifies the token and returns the decoded principal.
// It returns nil on any failure (malformed token, bad signature, expired,
// wrong secret) and never an error: absence means "unauthenticated", and
// callers must not distinguish why.
func PrincipalFromToken(tokenString string, secretKey []byte) *models.Principal {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}

	return &models.Principal{ID: claims.ID, Name: claims.Name, Email: claims.Email}
}
