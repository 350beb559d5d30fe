// Package requests answers read queries over membership requests: per-group
// listings and counts, and the pending requests a user is expected to review.
package requests

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

//go:generate moq -out request_repo_mock_test.go -pkg requests . requestRepo
//go:generate moq -out identity_repo_mock_test.go -pkg requests . identityRepo

type requestRepo interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error)
	ListByGroups(ctx context.Context, groupIDs []uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error)
	CountByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) (int, error)
}

type identityRepo interface {
	GetGroup(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	ManagedGroupIDs(ctx context.Context, userID uuid.UUID, maxDepth int) ([]uuid.UUID, error)
}

// Service provides request read operations.
type Service struct {
	requests requestRepo
	identity identityRepo
	cfg      domain.WorkflowConfig
	log      *slog.Logger
}

// NewService creates a new requests service.
func NewService(log *slog.Logger, requests requestRepo, identity identityRepo, cfg domain.WorkflowConfig) *Service {
	return &Service{
		requests: requests,
		identity: identity,
		cfg:      cfg,
		log:      log.With("service", "requests"),
	}
}

func validateFilter(filter domain.RequestFilter) error {
	var errs []domain.FieldError
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if filter.UserID != nil && *filter.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetRequestsByGroup lists the requests targeting a group, newest first.
// Returns domain.ErrNotFound if the group does not exist.
func (s *Service) GetRequestsByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if _, err := s.identity.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	views, err := s.requests.ListByGroup(ctx, groupID, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return views, nil
}

// CountRequestsByGroup counts the requests GetRequestsByGroup would return.
func (s *Service) CountRequestsByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) (int, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}
	if _, err := s.identity.GetGroup(ctx, groupID); err != nil {
		return 0, fmt.Errorf("get group: %w", err)
	}

	n, err := s.requests.CountByGroup(ctx, groupID, filter)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

// PendingRequestsForOwner returns the pending requests across every group
// the user owns or manages, directly or through nested groups.
func (s *Service) PendingRequestsForOwner(ctx context.Context, userID uuid.UUID) ([]domain.RequestView, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	groupIDs, err := s.identity.ManagedGroupIDs(ctx, userID, s.cfg.MaxGroupDepth)
	if err != nil {
		return nil, fmt.Errorf("managed groups: %w", err)
	}
	if len(groupIDs) == 0 {
		return []domain.RequestView{}, nil
	}

	pending := domain.RequestStatusPending
	views, err := s.requests.ListByGroups(ctx, groupIDs, domain.RequestFilter{Status: &pending})
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	s.log.DebugContext(ctx, "pending requests for owner",
		slog.String("user_id", userID.String()),
		slog.Int("groups", len(groupIDs)),
		slog.Int("requests", len(views)),
	)

	return views, nil
}
