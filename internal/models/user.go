package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
// The password hash is never serialized.
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`                       // Primary key
	Username      string     `json:"username" db:"username"`           // Unique username, case-insensitive
	Email         string     `json:"email" db:"email"`                 // Unique email, case-insensitive
	PasswordHash  string     `json:"-" db:"password"`                  // bcrypt hash
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	LastLoginAt   *time.Time `json:"last_login_at" db:"last_login_at"` // Last successful login
	AcceptedTerms bool       `json:"terms" db:"accepted_terms"`        // Terms of service accepted at registration
	IsAdmin       bool       `json:"is_admin" db:"is_admin"`           // Administrator flag
}
