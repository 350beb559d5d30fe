// Package counter implements named monotonic state counters using PostgreSQL.
// Each mutation of the membership graph bumps a counter inside its own
// transaction so readers can detect that cached state is stale.
package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
)

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new counter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const incrementSQL = `
INSERT INTO state_counters (name, value) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET value = state_counters.value + 1
RETURNING value`

const currentSQL = `SELECT value FROM state_counters WHERE name = $1`

// Increment bumps the named counter, creating it on first use, and returns the new value.
func (r *Repo) Increment(ctx context.Context, name string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var v int64
	if err := q.QueryRow(ctx, incrementSQL, name).Scan(&v); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}
	return v, nil
}

// Current returns the value of the named counter. A counter that was never
// incremented reads as zero.
func (r *Repo) Current(ctx context.Context, name string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var v int64
	err := q.QueryRow(ctx, currentSQL, name).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter %s: %w", name, err)
	}
	return v, nil
}
