package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
)

// migrations create the tables the settlement engine reads and writes.
// They are idempotent and run at startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
		block_reason TEXT NOT NULL DEFAULT '',
		daily_win_limit BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS wallets (
		user_id UUID PRIMARY KEY,
		available_balance BIGINT NOT NULL DEFAULT 0 CHECK (available_balance >= 0),
		pending_balance BIGINT NOT NULL DEFAULT 0 CHECK (pending_balance >= 0),
		available_spins BIGINT NOT NULL DEFAULT 0 CHECK (available_spins >= 0),
		total_winnings BIGINT NOT NULL DEFAULT 0,
		total_losses BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS spin_records (
		spin_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		outcome_id VARCHAR(16) NOT NULL,
		drawn_outcome_id VARCHAR(16) NOT NULL,
		amount BIGINT NOT NULL,
		segment_index INT NOT NULL,
		final_rotation_degrees DOUBLE PRECISION NOT NULL,
		signature CHAR(64) NOT NULL,
		signed_at_ms BIGINT NOT NULL,
		balance_before BIGINT NOT NULL,
		balance_after BIGINT NOT NULL,
		ip_address TEXT NOT NULL DEFAULT '',
		device_id TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		CHECK (balance_after = balance_before + amount)
	);`,
	`CREATE INDEX IF NOT EXISTS spin_records_user_created_idx ON spin_records (user_id, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS spin_records_created_idx ON spin_records (created_at);`,
	`CREATE TABLE IF NOT EXISTS user_daily_stats (
		user_id UUID NOT NULL,
		day DATE NOT NULL,
		spin_count BIGINT NOT NULL DEFAULT 0,
		winnings BIGINT NOT NULL DEFAULT 0,
		losses BIGINT NOT NULL DEFAULT 0,
		win_streak INT NOT NULL DEFAULT 0,
		loss_streak INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, day)
	);`,
	`CREATE TABLE IF NOT EXISTS daily_stats (
		day DATE PRIMARY KEY,
		active_players BIGINT NOT NULL DEFAULT 0,
		total_spins BIGINT NOT NULL DEFAULT 0,
		total_winnings BIGINT NOT NULL DEFAULT 0,
		biggest_win BIGINT NOT NULL DEFAULT 0,
		jackpot_count BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		activity_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		type VARCHAR(32) NOT NULL,
		details JSONB NOT NULL DEFAULT '{}',
		ip_address TEXT NOT NULL DEFAULT '',
		device_id TEXT NOT NULL DEFAULT '',
		is_suspicious BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS activity_logs_user_idx ON activity_logs (user_id, created_at DESC);`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("migration failed", "error", err)
			return err
		}
	}
	logger.Log.Infow("schema migrated", "statements", len(migrations))
	return nil
}
