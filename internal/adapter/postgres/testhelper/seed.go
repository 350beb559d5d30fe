package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an enabled user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + uniqueSuffix() + "@example.com",
		Role:      domain.UserRoleUser,
		Enabled:   true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, role, enabled, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, string(user.Role), user.Enabled, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGroup creates an enabled group with a unique name.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	group := domain.Group{
		ID:          uuid.New(),
		Name:        "team-" + uniqueSuffix(),
		Description: "seeded group",
		Enabled:     true,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO groups (id, name, description, enabled, created_at) VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.Name, group.Description, group.Enabled, group.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	return group
}

// SeedEdge creates an active edge for member on group with the given role.
func SeedEdge(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID, member domain.MemberRef, role domain.GroupRole) domain.GroupEdge {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	edge := domain.GroupEdge{
		ID:        uuid.New(),
		GroupID:   groupID,
		Member:    member,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO group_edges (id, group_id, member_type, member_id, role, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		edge.ID, edge.GroupID, string(member.MemberType()), member.MemberID(), string(edge.Role), edge.Active, edge.CreatedAt, edge.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEdge: %v", err)
	}

	return edge
}

// SeedRequest creates a pending request by requester for the member of edge,
// together with its creation status change.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, requesterID uuid.UUID, edge domain.GroupEdge) domain.Request {
	t.Helper()

	ctx := context.Background()
	req := domain.Request{
		ID:                uuid.New(),
		RequesterID:       requesterID,
		RequestingGroupID: edge.GroupID,
		OnBehalfOf:        edge.Member,
		EdgeID:            edge.ID,
		RequestedAt:       time.Now().UTC().Truncate(time.Microsecond),
		Status:            domain.RequestStatusPending,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO requests (id, requester_id, requesting_group_id, on_behalf_type, on_behalf_id, edge_id, requested_at, status, changes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '{}')`,
		req.ID, req.RequesterID, req.RequestingGroupID, string(edge.Member.MemberType()), edge.Member.MemberID(),
		req.EdgeID, req.RequestedAt, string(req.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO request_status_changes (id, request_id, user_id, from_status, to_status, change_at)
		 VALUES ($1, $2, $3, NULL, $4, $5)`,
		uuid.New(), req.ID, requesterID, string(req.Status), req.RequestedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest status change: %v", err)
	}

	return req
}
