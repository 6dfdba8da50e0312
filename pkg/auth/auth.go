package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"todo-app/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// identityKey is the gin context key holding the verified username.
const identityKey = "username"

// Claims represents JWT claims. Only the identity is embedded; tokens never
// carry password-derived material.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Auth handles password hashing and token operations
type Auth struct {
	config *config.AuthConfig
}

// New creates a new Auth instance
func New(cfg *config.AuthConfig) *Auth {
	return &Auth{config: cfg}
}

// HashPassword hashes a plaintext password with bcrypt
func (a *Auth) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.config.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash
func (a *Auth) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken generates a JWT token for the user
func (a *Auth) GenerateToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Subject:  username,
		},
	}
	if a.config.TokenTTLHours > 0 {
		ttl := time.Duration(a.config.TokenTTLHours) * time.Hour
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.config.JWTSecret))
}

// ValidateToken validates a JWT token and returns the claims
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.config.JWTSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Middleware returns a Gin middleware that verifies the bearer token and
// stores the caller identity in the request context. A missing credential is
// 401; a credential that fails verification is 403.
func (a *Auth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Older clients send the raw token; newer ones use the
		// Bearer scheme. Accept both.
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claims, err := a.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}

		c.Set(identityKey, claims.Username)
		c.Next()
	}
}

// Identity returns the verified username placed by Middleware.
func Identity(c *gin.Context) string {
	return c.GetString(identityKey)
}
