package models

import (
	"time"

	"github.com/google/uuid"
)

// BranchDB represents a branch record in the database
type BranchDB struct {
	BranchID  uuid.UUID `json:"id" db:"id"`                // Primary key
	Name      string    `json:"name" db:"name"`            // Branch name
	City      string    `json:"city" db:"city"`            // City the branch operates in
	Location  string    `json:"location" db:"location"`    // Optional street/area, empty when not set
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}
