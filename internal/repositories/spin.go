package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/transaction"
)

const spinColumns = `spin_id, user_id, outcome_id, drawn_outcome_id, amount, segment_index,
	final_rotation_degrees, signature, signed_at_ms, balance_before, balance_after,
	ip_address, device_id, user_agent, created_at`

// SpinRepository persists the append-only spin records.
type SpinRepository struct {
	db *sqlx.DB
}

func NewSpinRepository(db *sqlx.DB) *SpinRepository {
	return &SpinRepository{db: db}
}

// Save inserts a spin record. Records are never updated.
func (r *SpinRepository) Save(ctx context.Context, rec *models.SpinRecordDB) error {
	const query = `
		INSERT INTO spin_records (spin_id, user_id, outcome_id, drawn_outcome_id, amount, segment_index,
			final_rotation_degrees, signature, signed_at_ms, balance_before, balance_after,
			ip_address, device_id, user_agent, created_at)
		VALUES (:spin_id, :user_id, :outcome_id, :drawn_outcome_id, :amount, :segment_index,
			:final_rotation_degrees, :signature, :signed_at_ms, :balance_before, :balance_after,
			:ip_address, :device_id, :user_agent, :created_at)
	`

	_, err := sqlx.NamedExecContext(ctx, transaction.Executor(ctx, r.db), query, rec)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.SpinID, rec.UserID, rec.OutcomeID.String(), rec.Amount},
		"error", err,
	)

	return err
}

// GetByID returns one spin record or sql.ErrNoRows.
func (r *SpinRepository) GetByID(ctx context.Context, spinID uuid.UUID) (*models.SpinRecordDB, error) {
	query := `SELECT ` + spinColumns + ` FROM spin_records WHERE spin_id = $1`

	var rec models.SpinRecordDB
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &rec, query, spinID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{spinID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetLastSpinTime returns the creation time of the user's latest spin, nil if
// the user has never spun.
func (r *SpinRepository) GetLastSpinTime(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	const query = `
		SELECT created_at FROM spin_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var last time.Time
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &last, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", last,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &last, nil
}

// ListRecent returns the user's latest spins, newest first.
func (r *SpinRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.SpinRecordDB, error) {
	query := `SELECT ` + spinColumns + ` FROM spin_records
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var recs []models.SpinRecordDB
	err := sqlx.SelectContext(ctx, transaction.Executor(ctx, r.db), &recs, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(recs),
		"error", err,
	)

	return recs, err
}

// ListSince returns up to limit spins ordered oldest first by
// (created_at, spin_id), starting strictly after the cursor (since, afterID).
// uuid.Nil as afterID includes every spin created at since. Pass the last
// record of a page as the next cursor to read the following page.
func (r *SpinRepository) ListSince(ctx context.Context, since time.Time, afterID uuid.UUID, limit int) ([]models.SpinRecordDB, error) {
	query := `SELECT ` + spinColumns + ` FROM spin_records
		WHERE (created_at, spin_id) > ($1, $2)
		ORDER BY created_at ASC, spin_id ASC
		LIMIT $3`

	var recs []models.SpinRecordDB
	err := sqlx.SelectContext(ctx, transaction.Executor(ctx, r.db), &recs, query, since, afterID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{since, afterID, limit},
		"result", len(recs),
		"error", err,
	)

	return recs, err
}
