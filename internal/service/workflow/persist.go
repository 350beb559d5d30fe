package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// PersistGroupMemberChanges opens a request proposing updates to the edge
// between input.Member and input.GroupID. The request, its creation status
// change and reason, the edge mutation for actioned requests and the state
// counter bump commit together or not at all.
//
// Role is stored on the edge only: concurrent requests from one member to one
// group share the edge, and the last one actioned wins.
func (s *Service) PersistGroupMemberChanges(ctx context.Context, input PersistChangesInput) (*domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Updates.Role != nil {
		if err := domain.ValidateRoleForMember(input.Member, *input.Updates.Role); err != nil {
			return nil, err
		}
	}

	var (
		req         *domain.Request
		edgeCreated bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		edge, created, err := s.resolveEdge(txCtx, input.GroupID, input.Member, input.Updates.Role, input.CreateEdge)
		if err != nil {
			return err
		}
		edgeCreated = created

		req, err = s.requests.Create(txCtx, domain.Request{
			RequesterID:       input.RequesterID,
			RequestingGroupID: input.GroupID,
			OnBehalfOf:        input.Member,
			EdgeID:            edge.ID,
			Status:            input.Status,
			Changes:           domain.DiffEdge(*edge, input.Updates),
		})
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if err := s.appendStatusChange(txCtx, req.ID, input.RequesterID, nil, input.Status, input.Reason); err != nil {
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
		return nil, err
	}

	getMetrics().requestsCreated.WithLabelValues(string(req.Status)).Inc()

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", req.ID.String()),
		slog.String("group_id", req.RequestingGroupID.String()),
		slog.String("requester_id", req.RequesterID.String()),
		slog.String("member", req.OnBehalfOf.String()),
		slog.String("status", string(req.Status)),
		slog.String("changes", strings.Join(req.Changes.Keys(), ",")),
		slog.Bool("edge_created", edgeCreated),
	)

	return req, nil
}

// resolveEdge returns the edge between member and group. With create set a
// missing edge is inserted with the requested role (member if none), so the
// role is recorded on the edge and not in the change-set.
func (s *Service) resolveEdge(ctx context.Context, groupID uuid.UUID, member domain.MemberRef, role *domain.GroupRole, create bool) (*domain.GroupEdge, bool, error) {
	if create {
		defaultRole := domain.RoleMember
		if role != nil {
			defaultRole = *role
		}
		edge, created, err := s.edges.FindOrCreate(ctx, groupID, member, defaultRole)
		if err != nil {
			return nil, false, fmt.Errorf("find or create edge: %w", err)
		}
		return edge, created, nil
	}

	edge, err := s.edges.Find(ctx, groupID, member)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("%s in group %s: %w", member, groupID, domain.ErrMemberNotFound)
		}
		return nil, false, fmt.Errorf("find edge: %w", err)
	}
	return edge, false, nil
}

// appendStatusChange records a transition and the reason given for it.
func (s *Service) appendStatusChange(ctx context.Context, requestID, userID uuid.UUID, from *domain.RequestStatus, to domain.RequestStatus, reason string) error {
	sc, err := s.audit.CreateStatusChange(ctx, domain.StatusChange{
		RequestID:  requestID,
		UserID:     userID,
		FromStatus: from,
		ToStatus:   to,
	})
	if err != nil {
		return fmt.Errorf("create status change: %w", err)
	}

	_, err = s.audit.CreateComment(ctx, domain.Comment{
		ObjType: domain.CommentObjectStatusChange,
		ObjID:   sc.ID,
		UserID:  userID,
		Text:    strings.TrimSpace(reason),
	})
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// applyChanges writes a stored change-set to its edge. The edge row stays
// locked until commit so concurrent applies to one edge serialize.
func (s *Service) applyChanges(ctx context.Context, edgeID uuid.UUID, changes domain.ChangeSet) error {
	if changes.IsEmpty() {
		return nil
	}

	edge, err := s.edges.GetForUpdate(ctx, edgeID)
	if err != nil {
		return fmt.Errorf("lock edge: %w", err)
	}

	updated, err := changes.ApplyTo(*edge)
	if err != nil {
		return fmt.Errorf("apply changes to edge %s: %w", edgeID, err)
	}
	if err := domain.ValidateRoleForMember(updated.Member, updated.Role); err != nil {
		return err
	}

	_, err = s.edges.Update(ctx, edgeID, domain.EdgeUpdateParams{
		Role:       updated.Role,
		Expiration: updated.Expiration,
		Active:     updated.Active,
	})
	if err != nil {
		return fmt.Errorf("update edge: %w", err)
	}
	return nil
}

func (s *Service) bumpStateVersion(ctx context.Context) error {
	if _, err := s.counter.Increment(ctx, s.cfg.StateCounter); err != nil {
		return fmt.Errorf("bump state version: %w", err)
	}
	return nil
}
