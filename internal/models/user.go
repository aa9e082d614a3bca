package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// UserDB represents a user record in the database.
// PasswordHash is never serialized to callers.
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"id"`                // Primary key
	Name         string     `json:"name" db:"name"`            // Display name
	Email        string     `json:"email" db:"email"`          // Unique email, case-sensitive
	PasswordHash string     `json:"-" db:"password_hash"`      // Bcrypt hash
	Role         Role       `json:"role" db:"role"`            // admin or manager
	BranchID     *uuid.UUID `json:"branchId" db:"branch_id"`   // Required for managers, nil for admins
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"` // Creation timestamp
}
