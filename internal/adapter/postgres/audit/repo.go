// Package audit implements the request audit trail using PostgreSQL.
// Status changes and comments are append-only: there are no update or delete operations.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const statusChangeColumns = `id, request_id, user_id, from_status, to_status, change_at`

const commentColumns = `id, obj_type, obj_id, user_id, comment, created_on`

const insertStatusChangeSQL = `
INSERT INTO request_status_changes (id, request_id, user_id, from_status, to_status, change_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + statusChangeColumns

const insertCommentSQL = `
INSERT INTO comments (id, obj_type, obj_id, user_id, comment, created_on)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + commentColumns

const listStatusChangesSQL = `
SELECT ` + statusChangeColumns + `
FROM request_status_changes
WHERE request_id = $1
ORDER BY change_at, from_status NULLS FIRST, id`

const listCommentsSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE obj_type = $1 AND obj_id = ANY($2)
ORDER BY created_on, id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateStatusChange appends a status change. ID and ChangeAt are generated when zero.
func (r *Repo) CreateStatusChange(ctx context.Context, sc domain.StatusChange) (domain.StatusChange, error) {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	if sc.ChangeAt.IsZero() {
		sc.ChangeAt = now()
	}

	var from *string
	if sc.FromStatus != nil {
		s := string(*sc.FromStatus)
		from = &s
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanStatusChange(q.QueryRow(ctx, insertStatusChangeSQL,
		sc.ID, sc.RequestID, sc.UserID, from, string(sc.ToStatus), sc.ChangeAt,
	))
	if err != nil {
		return domain.StatusChange{}, postgres.MapError(err, "status_change", sc.ID)
	}
	return created, nil
}

// CreateComment appends a comment. ID and CreatedOn are generated when zero.
func (r *Repo) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedOn.IsZero() {
		c.CreatedOn = now()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanComment(q.QueryRow(ctx, insertCommentSQL,
		c.ID, string(c.ObjType), c.ObjID, c.UserID, c.Text, c.CreatedOn,
	))
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListStatusChanges returns the status changes of a request, oldest first.
// The creation event always sorts first.
func (r *Repo) ListStatusChanges(ctx context.Context, requestID uuid.UUID) ([]domain.StatusChange, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listStatusChangesSQL, requestID)
	if err != nil {
		return nil, fmt.Errorf("list status_changes: %w", err)
	}
	defer rows.Close()

	changes := []domain.StatusChange{}
	for rows.Next() {
		sc, err := scanStatusChange(rows)
		if err != nil {
			return nil, fmt.Errorf("list status_changes: %w", err)
		}
		changes = append(changes, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status_changes: %w", err)
	}

	return changes, nil
}

// ListComments returns the comments attached to any of the given objects, oldest first.
func (r *Repo) ListComments(ctx context.Context, objType domain.CommentObjectType, objIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(objIDs) == 0 {
		return []domain.Comment{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCommentsSQL, string(objType), objIDs)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanStatusChange(row pgx.Row) (domain.StatusChange, error) {
	var (
		sc   domain.StatusChange
		from *string
		to   string
	)
	if err := row.Scan(&sc.ID, &sc.RequestID, &sc.UserID, &from, &to, &sc.ChangeAt); err != nil {
		return domain.StatusChange{}, err
	}

	if from != nil {
		s := domain.RequestStatus(*from)
		sc.FromStatus = &s
	}
	sc.ToStatus = domain.RequestStatus(to)

	return sc, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var (
		c       domain.Comment
		objType string
	)
	if err := row.Scan(&c.ID, &objType, &c.ObjID, &c.UserID, &c.Text, &c.CreatedOn); err != nil {
		return domain.Comment{}, err
	}
	c.ObjType = domain.CommentObjectType(objType)
	return c, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
