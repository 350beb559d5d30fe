// Package request implements the membership request repository using PostgreSQL.
// Requests are created once and only their status changes afterwards.
package request

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const requestColumns = `id, requester_id, requesting_group_id, on_behalf_type, on_behalf_id, edge_id, requested_at, status, changes`

const insertSQL = `
INSERT INTO requests (id, requester_id, requesting_group_id, on_behalf_type, on_behalf_id, edge_id, requested_at, status, changes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + requestColumns

const getByIDSQL = `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

const updateStatusSQL = `UPDATE requests SET status = $2 WHERE id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a request. ID and RequestedAt are generated when zero.
func (r *Repo) Create(ctx context.Context, req domain.Request) (*domain.Request, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	changes, err := req.Changes.Marshal()
	if err != nil {
		return nil, fmt.Errorf("request %s marshal changes: %w", req.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		req.ID, req.RequesterID, req.RequestingGroupID,
		string(req.OnBehalfOf.MemberType()), req.OnBehalfOf.MemberID(),
		req.EdgeID, req.RequestedAt, string(req.Status), changes,
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, "request", req.ID)
	}
	return &created, nil
}

// UpdateStatus overwrites the current status of a request.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStatusSQL, id, string(status))
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns a request and locks its row until the surrounding
// transaction ends. Outside TxManager.RunInTx it fails with postgres.ErrNoTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	if !postgres.InTx(ctx) {
		return nil, postgres.ErrNoTx
	}
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, query string, id uuid.UUID) (*domain.Request, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	return &req, nil
}

// ListByGroup returns the request views for one group matching the filter,
// newest first. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error) {
	return r.ListByGroups(ctx, []uuid.UUID{groupID}, filter)
}

// ListByGroups is ListByGroup over several groups at once.
func (r *Repo) ListByGroups(ctx context.Context, groupIDs []uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error) {
	if len(groupIDs) == 0 {
		return []domain.RequestView{}, nil
	}

	query, args, err := buildListQuery(groupIDs, filter)
	if err != nil {
		return nil, fmt.Errorf("build list requests: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	views := []domain.RequestView{}
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("list requests: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return views, nil
}

// CountByGroup counts requests for a group with the same predicate as
// ListByGroup, without resolving display data.
func (r *Repo) CountByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) (int, error) {
	query, args, err := buildCountQuery(groupID, filter)
	if err != nil {
		return 0, fmt.Errorf("build count requests: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Query building
// ---------------------------------------------------------------------------

// firstCommentJoin picks the comment attached to the creation status change.
const firstCommentJoin = `LATERAL (
    SELECT c.comment FROM comments c
    WHERE c.obj_type = 'status_change' AND c.obj_id = sc.id
    ORDER BY c.created_on
    LIMIT 1
) fc ON TRUE`

func filterPredicate(groupCol any, filter domain.RequestFilter) sq.And {
	pred := sq.And{sq.Eq{"r.requesting_group_id": groupCol}}
	if filter.Status != nil {
		pred = append(pred, sq.Eq{"r.status": string(*filter.Status)})
	}
	if filter.UserID != nil {
		pred = append(pred, sq.Eq{
			"r.on_behalf_type": string(domain.MemberTypeUser),
			"r.on_behalf_id":   *filter.UserID,
		})
	}
	return pred
}

func buildListQuery(groupIDs []uuid.UUID, filter domain.RequestFilter) (string, []any, error) {
	var groupCol any = groupIDs
	if len(groupIDs) == 1 {
		groupCol = groupIDs[0]
	}

	return postgres.Builder().
		Select(
			"r.id", "r.requesting_group_id", "g.name",
			"r.requester_id", "ru.username",
			"r.on_behalf_type", "r.on_behalf_id", "COALESCE(ou.username, og.name, '')",
			"e.role", "r.status", "r.requested_at", "r.changes",
			"COALESCE(fc.comment, '')",
		).
		From("requests r").
		Join("groups g ON g.id = r.requesting_group_id").
		Join("users ru ON ru.id = r.requester_id").
		Join("group_edges e ON e.id = r.edge_id").
		Join("request_status_changes sc ON sc.request_id = r.id AND sc.from_status IS NULL").
		LeftJoin(firstCommentJoin).
		LeftJoin("users ou ON r.on_behalf_type = 'user' AND ou.id = r.on_behalf_id").
		LeftJoin("groups og ON r.on_behalf_type = 'group' AND og.id = r.on_behalf_id").
		Where(filterPredicate(groupCol, filter)).
		OrderBy("r.requested_at DESC", "r.id").
		ToSql()
}

func buildCountQuery(groupID uuid.UUID, filter domain.RequestFilter) (string, []any, error) {
	return postgres.Builder().
		Select("count(*)").
		From("requests r").
		Where(filterPredicate(groupID, filter)).
		ToSql()
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRequest(row pgx.Row) (domain.Request, error) {
	var (
		req          domain.Request
		onBehalfType string
		onBehalfID   uuid.UUID
		status       string
		changes      []byte
	)

	if err := row.Scan(&req.ID, &req.RequesterID, &req.RequestingGroupID, &onBehalfType, &onBehalfID,
		&req.EdgeID, &req.RequestedAt, &status, &changes); err != nil {
		return domain.Request{}, err
	}

	onBehalf, err := domain.NewMemberRef(domain.MemberType(onBehalfType), onBehalfID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("request %s: %w", req.ID, err)
	}
	cs, err := domain.UnmarshalChangeSet(changes)
	if err != nil {
		return domain.Request{}, fmt.Errorf("request %s: %w", req.ID, err)
	}

	req.OnBehalfOf = onBehalf
	req.Status = domain.RequestStatus(status)
	req.Changes = cs

	return req, nil
}

func scanView(row pgx.Row) (domain.RequestView, error) {
	var (
		v            domain.RequestView
		onBehalfType string
		onBehalfID   uuid.UUID
		role         string
		status       string
		changes      []byte
	)

	if err := row.Scan(&v.RequestID, &v.GroupID, &v.GroupName, &v.RequesterID, &v.RequesterName,
		&onBehalfType, &onBehalfID, &v.OnBehalfName, &role, &status, &v.RequestedAt, &changes, &v.Reason); err != nil {
		return domain.RequestView{}, err
	}

	onBehalf, err := domain.NewMemberRef(domain.MemberType(onBehalfType), onBehalfID)
	if err != nil {
		return domain.RequestView{}, fmt.Errorf("request %s: %w", v.RequestID, err)
	}
	cs, err := domain.UnmarshalChangeSet(changes)
	if err != nil {
		return domain.RequestView{}, fmt.Errorf("request %s: %w", v.RequestID, err)
	}

	v.OnBehalfOf = onBehalf
	v.Role = domain.GroupRole(role)
	v.Status = domain.RequestStatus(status)
	v.Changes = cs

	return v, nil
}
