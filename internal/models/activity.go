package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types written to the security trail.
const (
	ActivityLogin               = "login"
	ActivitySpin                = "spin"
	ActivityDepositRequest      = "deposit_request"
	ActivityWithdrawalRequest   = "withdrawal_request"
	ActivitySuspicious          = "suspicious"
	ActivityDailyLimitDowngrade = "daily_limit_downgrade"
	ActivitySignatureMismatch   = "signature_mismatch"
	ActivitySettlementAnomaly   = "settlement_anomaly"
)

// ActivityLogDB is an append-only security trail entry.
type ActivityLogDB struct {
	ActivityID   uuid.UUID `json:"activity_id" db:"activity_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Type         string    `json:"type" db:"type"`
	Details      string    `json:"details" db:"details"` // JSON document
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	DeviceID     string    `json:"device_id" db:"device_id"`
	IsSuspicious bool      `json:"is_suspicious" db:"is_suspicious"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
