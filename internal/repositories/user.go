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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user's role, block status and win limit.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, role, is_blocked, block_reason, daily_win_limit, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &user, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", user.Username,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
