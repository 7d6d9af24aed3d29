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

// StatsRepository maintains the per-user and operator-wide daily counters.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetUserDailyStat returns the user's counters for day. A user without a spin
// that day gets a zero stat rather than an error.
func (r *StatsRepository) GetUserDailyStat(ctx context.Context, userID uuid.UUID, day time.Time) (*models.UserDailyStatDB, error) {
	const query = `
		SELECT user_id, day, spin_count, winnings, losses, win_streak, loss_streak, updated_at
		FROM user_daily_stats
		WHERE user_id = $1 AND day = $2
	`

	var stat models.UserDailyStatDB
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &stat, query, userID, day)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, day},
		"result", stat,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return &models.UserDailyStatDB{UserID: userID, Day: day}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// ApplyUserSpin folds one settled spin into the user's counters for day and
// returns the updated row. A win extends the win streak and clears the loss
// streak, anything else does the opposite.
func (r *StatsRepository) ApplyUserSpin(ctx context.Context, userID uuid.UUID, day time.Time, tally models.SpinTally) (*models.UserDailyStatDB, error) {
	const query = `
		INSERT INTO user_daily_stats (user_id, day, spin_count, winnings, losses, win_streak, loss_streak, updated_at)
		VALUES ($1, $2, 1, $3, $4,
			CASE WHEN $5 THEN 1 ELSE 0 END,
			CASE WHEN $5 THEN 0 ELSE 1 END,
			NOW())
		ON CONFLICT (user_id, day) DO UPDATE SET
			spin_count = user_daily_stats.spin_count + 1,
			winnings = user_daily_stats.winnings + EXCLUDED.winnings,
			losses = user_daily_stats.losses + EXCLUDED.losses,
			win_streak = CASE WHEN $5 THEN user_daily_stats.win_streak + 1 ELSE 0 END,
			loss_streak = CASE WHEN $5 THEN 0 ELSE user_daily_stats.loss_streak + 1 END,
			updated_at = NOW()
		RETURNING user_id, day, spin_count, winnings, losses, win_streak, loss_streak, updated_at
	`
	args := []any{userID, day, tally.Winnings, tally.Losses, tally.Win}

	var stat models.UserDailyStatDB
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &stat, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", stat,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// ApplyDailySpin folds one settled spin into the operator-wide counters.
// firstSpinOfUser marks the spin that makes the user active for the day.
func (r *StatsRepository) ApplyDailySpin(ctx context.Context, day time.Time, tally models.SpinTally, firstSpinOfUser bool) error {
	const query = `
		INSERT INTO daily_stats (day, active_players, total_spins, total_winnings, biggest_win, jackpot_count, updated_at)
		VALUES ($1, $2, 1, $3, $3, $4, NOW())
		ON CONFLICT (day) DO UPDATE SET
			active_players = daily_stats.active_players + EXCLUDED.active_players,
			total_spins = daily_stats.total_spins + 1,
			total_winnings = daily_stats.total_winnings + EXCLUDED.total_winnings,
			biggest_win = GREATEST(daily_stats.biggest_win, EXCLUDED.biggest_win),
			jackpot_count = daily_stats.jackpot_count + EXCLUDED.jackpot_count,
			updated_at = NOW()
	`
	active, jackpots := 0, 0
	if firstSpinOfUser {
		active = 1
	}
	if tally.Jackpot {
		jackpots = 1
	}
	args := []any{day, active, tally.Winnings, jackpots}

	_, err := transaction.Executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetDailyStat returns the operator-wide counters for day, zero if none.
func (r *StatsRepository) GetDailyStat(ctx context.Context, day time.Time) (*models.DailyStatDB, error) {
	const query = `
		SELECT day, active_players, total_spins, total_winnings, biggest_win, jackpot_count, updated_at
		FROM daily_stats
		WHERE day = $1
	`

	var stat models.DailyStatDB
	err := sqlx.GetContext(ctx, transaction.Executor(ctx, r.db), &stat, query, day)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{day},
		"result", stat,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return &models.DailyStatDB{Day: day}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}
