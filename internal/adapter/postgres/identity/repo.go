// Package identity resolves users and groups and walks the ownership graph
// formed by group edges.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// Repo provides identity lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new identity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `id, username, role, enabled, created_at`

const groupColumns = `id, name, description, enabled, created_at`

const getUserSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getGroupSQL = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

// managedGroupsSQL starts from the groups where the user holds an approver
// role through a live edge, then descends into the groups that are live
// members of those groups. $3 bounds the descent; cycles terminate through
// UNION plus the depth guard.
const managedGroupsSQL = `
WITH RECURSIVE managed (group_id, depth) AS (
    SELECT e.group_id, 0
    FROM group_edges e
    JOIN groups g ON g.id = e.group_id AND g.enabled
    WHERE e.member_type = 'user'
      AND e.member_id = $1
      AND e.role = ANY($2)
      AND e.active
      AND (e.expiration IS NULL OR e.expiration > now())
  UNION
    SELECT child.member_id, m.depth + 1
    FROM managed m
    JOIN group_edges child ON child.group_id = m.group_id
    JOIN groups g ON g.id = child.member_id AND g.enabled
    WHERE child.member_type = 'group'
      AND child.active
      AND (child.expiration IS NULL OR child.expiration > now())
      AND m.depth < $3
)
SELECT DISTINCT group_id FROM managed`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetUser returns a user by ID.
func (r *Repo) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		u    domain.User
		role string
	)
	err := q.QueryRow(ctx, getUserSQL, id).Scan(&u.ID, &u.Username, &role, &u.Enabled, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

// GetGroup returns a group by ID.
func (r *Repo) GetGroup(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Group
	err := q.QueryRow(ctx, getGroupSQL, id).Scan(&g.ID, &g.Name, &g.Description, &g.Enabled, &g.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return &g, nil
}

// ManagedGroupIDs returns the groups where the user holds an approver role,
// plus their member groups down to maxDepth levels. Depth 0 yields the
// groups the user directly approves for.
func (r *Repo) ManagedGroupIDs(ctx context.Context, userID uuid.UUID, maxDepth int) ([]uuid.UUID, error) {
	roles := make([]string, 0, len(domain.ApproverRoles()))
	for _, role := range domain.ApproverRoles() {
		roles = append(roles, string(role))
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, managedGroupsSQL, userID, roles, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("managed groups for user %s: %w", userID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("managed groups for user %s: %w", userID, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
