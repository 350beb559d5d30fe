package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Codes for transactions PostgreSQL aborted that succeed when run again.
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

const defaultTxAttempts = 3

// TxManager runs units of work in a transaction carried by the context.
// A RunInTx call whose context already carries a transaction joins it.
type TxManager struct {
	pool     *pgxpool.Pool
	opts     pgx.TxOptions
	attempts int
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithAttempts bounds how many times a unit of work is run when the
// database aborts it with a serialization failure or deadlock.
func WithAttempts(n int) TxOption {
	return func(m *TxManager) {
		if n > 0 {
			m.attempts = n
		}
	}
}

func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{
		pool:     pool,
		opts:     pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		attempts: defaultTxAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back and propagates. Aborted transactions are retried only at
// the outermost level, since a joined transaction cannot be restarted.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
			return fn(withTx(ctx, tx))
		})
		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}
	if err != nil && retryable(err) {
		return fmt.Errorf("transaction aborted after %d attempts: %w", m.attempts, err)
	}
	return err
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == CodeSerializationFailure || pgErr.Code == CodeDeadlockDetected
}
