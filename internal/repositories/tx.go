package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sethvargo/go-retry"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the transaction bound to ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// TxManager runs units of work inside a single database transaction.
// Serialization failures and deadlocks re-run the whole unit; nothing is
// retried midway.
type TxManager struct {
	db      *sqlx.DB
	retries uint64
	backoff time.Duration
}

// NewTxManager creates a TxManager retrying a failed transaction at most retries times.
func NewTxManager(db *sqlx.DB, retries uint64) *TxManager {
	return &TxManager{db: db, retries: retries, backoff: 20 * time.Millisecond}
}

// WithTx executes fn with a transaction carried in its context. A nested call
// joins the outer transaction.
func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(m.retries, retry.NewExponential(m.backoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.run(ctx, fn)
		if IsRetryable(err) {
			logger.Log.Warnw("transaction conflict, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
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
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if err = tx.Commit(); err != nil {
			logger.Log.Errorw("failed to commit transaction", "error", err)
		}
	}()

	return fn(setTxToContext(ctx, tx))
}
