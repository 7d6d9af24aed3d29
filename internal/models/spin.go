package models

import (
	"time"

	"github.com/google/uuid"
)

// SpinRecordDB is the immutable audit row written for every settled spin.
type SpinRecordDB struct {
	SpinID               uuid.UUID `json:"spin_id" db:"spin_id"`
	UserID               uuid.UUID `json:"user_id" db:"user_id"`
	OutcomeID            OutcomeID `json:"outcome_id" db:"outcome_id"`
	DrawnOutcomeID       OutcomeID `json:"drawn_outcome_id" db:"drawn_outcome_id"` // Differs from OutcomeID after a daily-limit downgrade
	Amount               int64     `json:"amount" db:"amount"`
	SegmentIndex         int       `json:"segment_index" db:"segment_index"`
	FinalRotationDegrees float64   `json:"final_rotation_degrees" db:"final_rotation_degrees"`
	Signature            string    `json:"signature" db:"signature"`
	SignedAtMillis       int64     `json:"signed_at_ms" db:"signed_at_ms"`
	BalanceBefore        int64     `json:"balance_before" db:"balance_before"`
	BalanceAfter         int64     `json:"balance_after" db:"balance_after"`
	IPAddress            string    `json:"ip_address" db:"ip_address"`
	DeviceID             string    `json:"device_id" db:"device_id"`
	UserAgent            string    `json:"user_agent" db:"user_agent"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}

// Downgraded reports whether the daily win limit replaced the drawn outcome.
func (r SpinRecordDB) Downgraded() bool {
	return r.DrawnOutcomeID != r.OutcomeID
}

// SpinRequest carries the caller identity and client metadata of a spin.
type SpinRequest struct {
	UserID    uuid.UUID
	IPAddress string
	DeviceID  string
	UserAgent string
}

// SpinResult is returned synchronously to the caller of a settled spin.
type SpinResult struct {
	SpinID               uuid.UUID `json:"spin_id"`
	OutcomeID            OutcomeID `json:"outcome_id"`
	Amount               int64     `json:"amount"`
	SegmentIndex         int       `json:"segment_index"`
	FinalRotationDegrees float64   `json:"final_rotation_degrees"`
	Signature            string    `json:"signature"`
	Timestamp            int64     `json:"timestamp"`
	Balance              int64     `json:"balance"`
	AvailableSpins       int64     `json:"available_spins"`
}
