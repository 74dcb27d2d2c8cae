package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	Role         string    `json:"role" db:"role"`             // Role, "user" by default
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
