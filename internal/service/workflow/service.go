// Package workflow implements the membership request workflow: proposing a
// change to a group edge, recording it as an auditable request, and applying
// it to the edge when the request is actioned.
package workflow

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

//go:generate moq -out edge_repo_mock_test.go -pkg workflow . edgeRepo
//go:generate moq -out request_repo_mock_test.go -pkg workflow . requestRepo
//go:generate moq -out audit_repo_mock_test.go -pkg workflow . auditRepo
//go:generate moq -out counter_repo_mock_test.go -pkg workflow . counterRepo
//go:generate moq -out group_authority_mock_test.go -pkg workflow . groupAuthority
//go:generate moq -out tx_manager_mock_test.go -pkg workflow . txManager

type edgeRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.GroupEdge, error)
	Find(ctx context.Context, groupID uuid.UUID, member domain.MemberRef) (*domain.GroupEdge, error)
	FindOrCreate(ctx context.Context, groupID uuid.UUID, member domain.MemberRef, defaultRole domain.GroupRole) (*domain.GroupEdge, bool, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EdgeUpdateParams) (*domain.GroupEdge, error)
}

type requestRepo interface {
	Create(ctx context.Context, req domain.Request) (*domain.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
}

type auditRepo interface {
	CreateStatusChange(ctx context.Context, sc domain.StatusChange) (domain.StatusChange, error)
	CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListStatusChanges(ctx context.Context, requestID uuid.UUID) ([]domain.StatusChange, error)
	ListComments(ctx context.Context, objType domain.CommentObjectType, objIDs []uuid.UUID) ([]domain.Comment, error)
}

type counterRepo interface {
	Increment(ctx context.Context, name string) (int64, error)
	Current(ctx context.Context, name string) (int64, error)
}

type groupAuthority interface {
	ManagedGroupIDs(ctx context.Context, userID uuid.UUID, maxDepth int) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the request workflow.
type Service struct {
	edges     edgeRepo
	requests  requestRepo
	audit     auditRepo
	counter   counterRepo
	authority groupAuthority
	tx        txManager
	cfg       domain.WorkflowConfig
	log       *slog.Logger
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	edges edgeRepo,
	requests requestRepo,
	audit auditRepo,
	counter counterRepo,
	authority groupAuthority,
	tx txManager,
	cfg domain.WorkflowConfig,
) *Service {
	return &Service{
		edges:     edges,
		requests:  requests,
		audit:     audit,
		counter:   counter,
		authority: authority,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "workflow"),
	}
}

// canApprove reports whether the user may action requests for the group.
// Authority is direct: owning a parent group does not grant approval over
// its member groups, which only show up in the pending-requests view.
// Admins may approve anywhere.
func (s *Service) canApprove(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	if ctxutil.IsAdminCtx(ctx) {
		return true, nil
	}
	managed, err := s.authority.ManagedGroupIDs(ctx, userID, 0)
	if err != nil {
		return false, err
	}
	return slices.Contains(managed, groupID), nil
}

// canActFor reports whether the user may propose changes on behalf of member:
// users act for themselves, and approvers of a group act for that group.
func (s *Service) canActFor(ctx context.Context, userID uuid.UUID, member domain.MemberRef) (bool, error) {
	switch m := member.(type) {
	case domain.UserRef:
		if m.UserID == userID || ctxutil.IsAdminCtx(ctx) {
			return true, nil
		}
		return false, nil
	case domain.GroupRef:
		return s.canApprove(ctx, userID, m.GroupID)
	}
	return false, nil
}
