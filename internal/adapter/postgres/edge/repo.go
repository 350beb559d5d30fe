// Package edge implements the group membership edge repository using PostgreSQL.
// Edges are unique per (group_id, member_type, member_id) and are never deleted.
package edge

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

const uniqueConstraint = "group_edges_member_uniq"

// Repo provides edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new edge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const edgeColumns = `id, group_id, member_type, member_id, role, expiration, active, created_at, updated_at`

const getByIDSQL = `SELECT ` + edgeColumns + ` FROM group_edges WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const findSQL = `
SELECT ` + edgeColumns + `
FROM group_edges
WHERE group_id = $1 AND member_type = $2 AND member_id = $3`

const insertSQL = `
INSERT INTO group_edges (id, group_id, member_type, member_id, role, active)
VALUES ($1, $2, $3, $4, $5, FALSE)
ON CONFLICT ON CONSTRAINT ` + uniqueConstraint + ` DO NOTHING
RETURNING ` + edgeColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetForUpdate returns an edge and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.GroupEdge, error) {
	if !postgres.InTx(ctx) {
		return nil, postgres.ErrNoTx
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEdge(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "group_edge", id)
	}
	return &e, nil
}

// Find returns the edge linking member to group.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) Find(ctx context.Context, groupID uuid.UUID, member domain.MemberRef) (*domain.GroupEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEdge(q.QueryRow(ctx, findSQL, groupID, string(member.MemberType()), member.MemberID()))
	if err != nil {
		return nil, postgres.MapError(err, "group_edge", groupID)
	}
	return &e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// FindOrCreate returns the edge linking member to group, inserting an inactive
// edge with defaultRole if none exists. The bool result reports whether this
// call created the edge. A concurrent insert of the same edge is resolved by
// the unique constraint: the losing call returns the winner's row.
func (r *Repo) FindOrCreate(ctx context.Context, groupID uuid.UUID, member domain.MemberRef, defaultRole domain.GroupRole) (*domain.GroupEdge, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEdge(q.QueryRow(ctx, insertSQL,
		uuid.New(), groupID, string(member.MemberType()), member.MemberID(), string(defaultRole),
	))
	switch {
	case err == nil:
		return &e, true, nil
	case errors.Is(err, pgx.ErrNoRows), postgres.IsUniqueViolation(err, uniqueConstraint):
		// Conflict: someone else owns the row.
	default:
		return nil, false, postgres.MapError(err, "group_edge", groupID)
	}

	existing, err := r.Find(ctx, groupID, member)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Update overwrites role, expiration and active on an edge.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.GroupEdge, error) {
	query, args, err := postgres.Builder().
		Update("group_edges").
		SetMap(map[string]any{
			"role":       string(params.Role),
			"expiration": params.Expiration,
			"active":     params.Active,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + edgeColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update group_edge: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEdge(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "group_edge", id)
	}
	return &e, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEdge(row pgx.Row) (domain.GroupEdge, error) {
	var (
		e          domain.GroupEdge
		memberType string
		memberID   uuid.UUID
		role       string
		expiration *time.Time
	)

	if err := row.Scan(&e.ID, &e.GroupID, &memberType, &memberID, &role, &expiration, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return domain.GroupEdge{}, err
	}

	member, err := domain.NewMemberRef(domain.MemberType(memberType), memberID)
	if err != nil {
		return domain.GroupEdge{}, fmt.Errorf("group_edge %s: %w", e.ID, err)
	}

	e.Member = member
	e.Role = domain.GroupRole(role)
	e.Expiration = expiration

	return e, nil
}
