package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

// GetRequest returns a request with its timeline of status changes, each
// paired with its comment. Visible to the requester, the member the request
// is for, and approvers of the group.
func (s *Service) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.RequestHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	allowed := req.RequesterID == userID || domain.SameMember(req.OnBehalfOf, domain.UserRef{UserID: userID})
	if !allowed {
		allowed, err = s.canApprove(ctx, userID, req.RequestingGroupID)
		if err != nil {
			return nil, fmt.Errorf("check approver: %w", err)
		}
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	changes, err := s.audit.ListStatusChanges(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("list status changes: %w", err)
	}

	ids := make([]uuid.UUID, len(changes))
	for i, c := range changes {
		ids[i] = c.ID
	}
	comments, err := s.audit.ListComments(ctx, domain.CommentObjectStatusChange, ids)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	// One comment per status change; keep the earliest if there are more.
	byChange := make(map[uuid.UUID]*domain.Comment, len(comments))
	for i := range comments {
		if _, seen := byChange[comments[i].ObjID]; !seen {
			byChange[comments[i].ObjID] = &comments[i]
		}
	}

	events := make([]domain.StatusEvent, len(changes))
	for i, c := range changes {
		events[i] = domain.StatusEvent{Change: c, Comment: byChange[c.ID]}
	}

	return &domain.RequestHistory{Request: *req, Events: events}, nil
}

// StateVersion returns the current value of the graph state counter.
// It increases with every committed membership mutation.
func (s *Service) StateVersion(ctx context.Context) (int64, error) {
	v, err := s.counter.Current(ctx, s.cfg.StateCounter)
	if err != nil {
		return 0, fmt.Errorf("state version: %w", err)
	}
	return v, nil
}
