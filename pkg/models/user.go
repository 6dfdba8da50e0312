package models

import "time"

// User represents a registered account. Password always holds a bcrypt
// hash, never plaintext.
type User struct {
	Username  string    `json:"username" bson:"_id"`
	Password  string    `json:"-" bson:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CredentialsRequest represents the request body for register and login
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the response for register and login
type TokenResponse struct {
	Token string `json:"token"`
}
