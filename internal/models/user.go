package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents the fields of a user record the settlement engine reads.
type UserDB struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`                 // Primary key
	Username      string    `json:"username" db:"username"`               // Unique username
	Role          string    `json:"role" db:"role"`                       // user or admin
	IsBlocked     bool      `json:"is_blocked" db:"is_blocked"`           // Account disabled
	BlockReason   string    `json:"block_reason" db:"block_reason"`       // Shown to the user when blocked
	DailyWinLimit *int64    `json:"daily_win_limit" db:"daily_win_limit"` // Per-user override in cents, nil = default
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
