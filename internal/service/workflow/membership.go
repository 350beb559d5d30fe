package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

// RequestJoin opens a pending request for input.Member to join the group,
// creating an inactive edge if needed. Users request for themselves; a group
// can be put forward by one of its approvers.
func (s *Service) RequestJoin(ctx context.Context, input MembershipInput) (*domain.Request, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	allowed, err := s.canActFor(ctx, userID, input.Member)
	if err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.PersistGroupMemberChanges(ctx, PersistChangesInput{
		GroupID:     input.GroupID,
		RequesterID: userID,
		Member:      input.Member,
		Status:      domain.RequestStatusPending,
		Reason:      input.Reason,
		CreateEdge:  true,
		Updates:     input.updates(),
	})
}

// AddMember adds input.Member to the group directly. The request is recorded
// as actioned and applied at once. Requires approval authority over the group.
func (s *Service) AddMember(ctx context.Context, input MembershipInput) (*domain.Request, error) {
	userID, err := s.requireApprover(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.PersistGroupMemberChanges(ctx, PersistChangesInput{
		GroupID:     input.GroupID,
		RequesterID: userID,
		Member:      input.Member,
		Status:      domain.RequestStatusActioned,
		Reason:      input.Reason,
		CreateEdge:  true,
		Updates:     input.updates(),
	})
}

// EditMember changes the role or expiration of an existing membership.
// Fails with ErrMemberNotFound when there is no edge to edit.
func (s *Service) EditMember(ctx context.Context, input MembershipInput) (*domain.Request, error) {
	userID, err := s.requireApprover(ctx, input)
	if err != nil {
		return nil, err
	}
	if input.Role == nil && input.Expiration == nil {
		return nil, domain.NewValidationError("input", "at least one field must be provided")
	}

	return s.PersistGroupMemberChanges(ctx, PersistChangesInput{
		GroupID:     input.GroupID,
		RequesterID: userID,
		Member:      input.Member,
		Status:      domain.RequestStatusActioned,
		Reason:      input.Reason,
		Updates: domain.EdgeUpdates{
			Role:       input.Role,
			Expiration: input.Expiration,
		},
	})
}

// RevokeMember deactivates a membership. Approvers may revoke anyone; users
// may always remove themselves. The edge is kept with active=false.
func (s *Service) RevokeMember(ctx context.Context, input RevokeInput) (*domain.Request, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	allowed := domain.SameMember(input.Member, domain.UserRef{UserID: userID})
	if !allowed {
		var err error
		allowed, err = s.canApprove(ctx, userID, input.GroupID)
		if err != nil {
			return nil, fmt.Errorf("check approver: %w", err)
		}
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	inactive := false
	return s.PersistGroupMemberChanges(ctx, PersistChangesInput{
		GroupID:     input.GroupID,
		RequesterID: userID,
		Member:      input.Member,
		Status:      domain.RequestStatusActioned,
		Reason:      input.Reason,
		Updates:     domain.EdgeUpdates{Active: &inactive},
	})
}

// requireApprover validates input and returns the authenticated user if
// they may approve changes to input.GroupID.
func (s *Service) requireApprover(ctx context.Context, input MembershipInput) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	allowed, err := s.canApprove(ctx, userID, input.GroupID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check approver: %w", err)
	}
	if !allowed {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
