package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/transaction"
)

const walletColumns = `user_id, available_balance, pending_balance, available_spins,
	total_winnings, total_losses, created_at, updated_at`

// WalletRepository is the wallet ledger. Adjust is the only statement that
// changes wallet balances.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// ensure creates an empty wallet for the user if none exists.
func (r *WalletRepository) ensure(ctx context.Context, executor sqlx.ExtContext, userID uuid.UUID) error {
	const query = `
		INSERT INTO wallets (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := executor.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Log.Errorw(
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{userID},
			"error", err,
		)
	}
	return err
}

// GetOrCreate returns the user's wallet, creating an empty one on first access.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	executor := transaction.Executor(ctx, r.db)
	if err := r.ensure(ctx, executor, userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Lock returns the user's wallet and holds its row lock until the enclosing
// transaction ends, creating an empty wallet on first access. Spins of one
// user queue behind each other on this lock.
func (r *WalletRepository) Lock(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	executor := transaction.Executor(ctx, r.db)
	if err := r.ensure(ctx, executor, userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Adjust applies delta to the user's wallet in one conditional UPDATE and
// returns the wallet after the change. The row lock taken by the UPDATE
// serializes concurrent adjustments of the same user, and the WHERE clause
// is re-evaluated against the latest committed row, so the non-negativity
// check never sees a stale balance. Returns models.ErrInsufficientFunds
// when the delta would drive any balance below zero.
func (r *WalletRepository) Adjust(ctx context.Context, userID uuid.UUID, delta models.WalletDelta) (*models.WalletDB, error) {
	executor := transaction.Executor(ctx, r.db)
	if err := r.ensure(ctx, executor, userID); err != nil {
		return nil, err
	}

	query := `
		UPDATE wallets SET
			available_balance = available_balance + $2,
			pending_balance = pending_balance + $3,
			available_spins = available_spins + $4,
			total_winnings = total_winnings + $5,
			total_losses = total_losses + $6,
			updated_at = NOW()
		WHERE user_id = $1
		  AND available_balance + $2 >= 0
		  AND pending_balance + $3 >= 0
		  AND available_spins + $4 >= 0
		RETURNING ` + walletColumns

	args := []any{userID, delta.Available, delta.Pending, delta.Spins, delta.Winnings, delta.Losses}

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", wallet,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInsufficientFunds
		}
		return nil, err
	}
	return &wallet, nil
}
