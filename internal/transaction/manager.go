// Package transaction propagates an sqlx transaction through a context so
// that repositories join whatever unit of work their caller opened.
package transaction

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Executor returns the transaction bound to ctx, or db when there is none.
func Executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// Manager runs functions inside a database transaction.
type Manager struct {
	db *sqlx.DB
}

// NewManager creates a Manager over db.
func NewManager(db *sqlx.DB) *Manager {
	return &Manager{db: db}
}

// Do runs fn in a transaction that is committed when fn returns nil and
// rolled back otherwise. A call made while ctx already carries a
// transaction joins it and leaves commit to the outer owner.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr, "cause", err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	return nil
}
