package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                     // Primary key
	Email        string    `json:"email" db:"email"`               // Lower-cased, unique
	Name         string    `json:"name" db:"name"`                 // Optional display name
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	IsActive     bool      `json:"is_active" db:"is_active"`       // Inactive users cannot authenticate
	IsStaff      bool      `json:"is_staff" db:"is_staff"`         // Operator access
	IsSuperuser  bool      `json:"is_superuser" db:"is_superuser"` // All permissions
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
