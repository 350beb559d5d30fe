package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

// UpdateStatus moves a request to input.Status. The request row is locked
// for the duration of the transaction, so of two concurrent transitions the
// second observes the first's result and fails with ErrInvalidStatusTransition.
// Moving to actioned applies the stored change-set to the edge.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var req *domain.Request
	var from domain.RequestStatus
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		req, err = s.requests.GetForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		from = req.Status
		if !domain.IsValidTransition(from, input.Status) {
			return &domain.TransitionError{From: from, To: input.Status}
		}

		if err := s.requests.UpdateStatus(txCtx, req.ID, input.Status); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}

		if err := s.appendStatusChange(txCtx, req.ID, input.UserID, &from, input.Status, input.Reason); err != nil {
			return err
		}

		if input.Status == domain.RequestStatusActioned {
			if err := s.applyChanges(txCtx, req.EdgeID, req.Changes); err != nil {
				return err
			}
		}

		return s.bumpStateVersion(txCtx)
	})
	if err != nil {
		return err
	}

	getMetrics().transitions.WithLabelValues(string(from), string(input.Status)).Inc()

	s.log.InfoContext(ctx, "request status changed",
		slog.String("request_id", req.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(input.Status)),
	)

	return nil
}

// TransitionRequest is UpdateStatus for the authenticated user. Actioning
// requires approval authority over the request's group; cancelling is also
// open to the original requester.
func (s *Service) TransitionRequest(ctx context.Context, input TransitionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}

	allowed := input.Status == domain.RequestStatusCancelled && req.RequesterID == userID
	if !allowed {
		allowed, err = s.canApprove(ctx, userID, req.RequestingGroupID)
		if err != nil {
			return fmt.Errorf("check approver: %w", err)
		}
	}
	if !allowed {
		return domain.ErrForbidden
	}

	return s.UpdateStatus(ctx, UpdateStatusInput{
		RequestID: input.RequestID,
		UserID:    userID,
		Status:    input.Status,
		Reason:    input.Reason,
	})
}
