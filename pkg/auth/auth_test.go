package auth

import (
	"testing"
	"time"

	"todo-app/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func testAuth() *Auth {
	return New(&config.AuthConfig{
		JWTSecret:     "test-secret",
		BcryptCost:    bcrypt.MinCost,
		TokenTTLHours: 1,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	a := testAuth()

	token, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want %q", claims.Username, "alice")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	a := testAuth()

	valid, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	otherSecret := New(&config.AuthConfig{JWTSecret: "other-secret", TokenTTLHours: 1})
	foreign, err := otherSecret.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	expired := signedToken(t, "test-secret", time.Now().Add(-time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"tampered payload", valid[:len(valid)-4] + "xxxx"},
		{"wrong secret", foreign},
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"expired", expired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.ValidateToken(tc.token); err == nil {
				t.Error("ValidateToken accepted an invalid token")
			}
		})
	}
}

// signedToken builds a token with an arbitrary expiry using the raw jwt API.
func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   "alice",
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenWithoutExpiry(t *testing.T) {
	a := New(&config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 0})

	token, err := a.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("ExpiresAt = %v, want nil", claims.ExpiresAt)
	}
}

func TestPasswordHashing(t *testing.T) {
	a := testAuth()

	hash, err := a.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash equals plaintext")
	}

	if err := a.CheckPassword(hash, "hunter2"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := a.CheckPassword(hash, "wrong"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}
