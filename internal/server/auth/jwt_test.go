package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/akarpov/gqltodo/internal/server/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       "user-123",
		Name:     "John",
		Email:    "john@example.com",
		Password: "test123",
	}
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	user := testUser()

	tok, err := GenerateToken(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	p := PrincipalFromToken(tok, secret)
	if p == nil {
		t.Fatal("expected principal, got nil")
	}
	if p.ID != user.ID || p.Name != user.Name || p.Email != user.Email {
		t.Fatalf("principal mismatch: got %+v want %+v", p, user.Public())
	}
}

func TestPrincipalFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(testUser(), secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if p := PrincipalFromToken(tok, secret); p != nil {
		t.Fatalf("expected nil principal for expired token, got %+v", p)
	}
}

func TestPrincipalFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(testUser(), []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if p := PrincipalFromToken(tok, []byte("wrong-secret")); p != nil {
		t.Fatalf("expected nil principal for wrong secret, got %+v", p)
	}
}

func TestPrincipalFromToken_Malformed(t *testing.T) {
	t.Parallel()

	if p := PrincipalFromToken("not.a.jwt", []byte("k")); p != nil {
		t.Fatalf("expected nil principal for malformed token, got %+v", p)
	}
	if p := PrincipalFromToken("", []byte("k")); p != nil {
		t.Fatalf("expected nil principal for empty token, got %+v", p)
	}
}

func TestPrincipalFromToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(testUser(), secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if p := PrincipalFromToken(tampered, secret); p != nil {
		t.Fatalf("expected nil principal for tampered token, got %+v", p)
	}
}
