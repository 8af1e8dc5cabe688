package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user (UUID string).
	UserID string `json:"-"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// AuthHash is the HMAC-SHA256 hash of the user's password.
	// Plaintext passwords never reach the persistence layer.
	AuthHash string `json:"auth_hash,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
