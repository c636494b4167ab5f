package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`                  // Primary key
	Email        string     `json:"email" db:"email"`                 // Unique email
	FullName     *string    `json:"full_name" db:"full_name"`         // Optional full name
	PasswordHash string     `json:"-" db:"password_hash"`             // Bcrypt hash, never serialized
	IsActive     bool       `json:"is_active" db:"is_active"`         // Account enabled flag
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"` // Last update timestamp
}
