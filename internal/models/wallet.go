package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInsufficientFunds is returned by the ledger when a delta would drive a
// balance or the spin credit count below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// WalletDB represents a wallet row in the database. Amounts are in cents.
type WalletDB struct {
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                     // Owner of the wallet
	AvailableBalance int64     `json:"available_balance" db:"available_balance"` // Spendable and withdrawable
	PendingBalance   int64     `json:"pending_balance" db:"pending_balance"`     // Reserved during withdrawal review
	AvailableSpins   int64     `json:"available_spins" db:"available_spins"`     // Prepaid spin credits
	TotalWinnings    int64     `json:"total_winnings" db:"total_winnings"`       // Lifetime winnings
	TotalLosses      int64     `json:"total_losses" db:"total_losses"`           // Lifetime losses
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// WalletDelta is the set of changes applied by one ledger adjustment.
type WalletDelta struct {
	Available int64
	Pending   int64
	Spins     int64
	Winnings  int64
	Losses    int64
}
