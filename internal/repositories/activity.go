package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/transaction"
)

// ActivityRepository appends entries to the security trail.
type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Save inserts an activity entry. Missing ids and details are filled in.
func (r *ActivityRepository) Save(ctx context.Context, entry *models.ActivityLogDB) error {
	const query = `
		INSERT INTO activity_logs (activity_id, user_id, type, details, ip_address, device_id, is_suspicious, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, NOW())
	`
	if entry.ActivityID == uuid.Nil {
		entry.ActivityID = uuid.New()
	}
	if entry.Details == "" {
		entry.Details = "{}"
	}
	args := []any{entry.ActivityID, entry.UserID, entry.Type, entry.Details, entry.IPAddress, entry.DeviceID, entry.IsSuspicious}

	_, err := transaction.Executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ListByUser returns the user's latest activity entries, newest first.
func (r *ActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLogDB, error) {
	const query = `
		SELECT activity_id, user_id, type, details::text AS details, ip_address, device_id, is_suspicious, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var entries []models.ActivityLogDB
	err := sqlx.SelectContext(ctx, transaction.Executor(ctx, r.db), &entries, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
