package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

type memberRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (m memberRef) toDomain(field string) (domain.MemberRef, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, domain.NewValidationError(field+".id", "must be a UUID")
	}
	ref, err := domain.NewMemberRef(domain.MemberType(m.Type), id)
	if err != nil {
		return nil, domain.NewValidationError(field+".type", "must be user or group")
	}
	return ref, nil
}

func toMemberRef(ref domain.MemberRef) memberRef {
	if ref == nil {
		return memberRef{}
	}
	return memberRef{Type: ref.MemberType().String(), ID: ref.MemberID().String()}
}

// membershipRequest is the body of join, add and edit calls.
// Expiration is a YYYY-MM-DD date; "" removes an existing expiration.
type membershipRequest struct {
	Member     *memberRef `json:"member"`
	Role       *string    `json:"role"`
	Expiration *string    `json:"expiration"`
	Reason     string     `json:"reason"`
}

func (b membershipRequest) role() (*domain.GroupRole, error) {
	if b.Role == nil {
		return nil, nil
	}
	role, err := domain.ParseGroupRole(*b.Role)
	if err != nil {
		return nil, domain.NewValidationError("role", "must be one of member, manager, owner, np-owner")
	}
	return &role, nil
}

func (b membershipRequest) expiration() (*domain.ExpirationUpdate, error) {
	if b.Expiration == nil {
		return nil, nil
	}
	at, err := domain.ParseDate(*b.Expiration)
	if err != nil {
		return nil, domain.NewValidationError("expiration", "must be a YYYY-MM-DD date")
	}
	return &domain.ExpirationUpdate{At: at}, nil
}

type revokeRequest struct {
	Member memberRef `json:"member"`
	Reason string    `json:"reason"`
}

type statusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type requestResponse struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requesterId"`
	GroupID     string           `json:"groupId"`
	OnBehalfOf  memberRef        `json:"onBehalfOf"`
	EdgeID      string           `json:"edgeId"`
	RequestedAt time.Time        `json:"requestedAt"`
	Status      string           `json:"status"`
	Changes     domain.ChangeSet `json:"changes"`
}

func toRequestResponse(req *domain.Request) requestResponse {
	return requestResponse{
		ID:          req.ID.String(),
		RequesterID: req.RequesterID.String(),
		GroupID:     req.RequestingGroupID.String(),
		OnBehalfOf:  toMemberRef(req.OnBehalfOf),
		EdgeID:      req.EdgeID.String(),
		RequestedAt: req.RequestedAt,
		Status:      req.Status.String(),
		Changes:     req.Changes,
	}
}

type namedMemberRef struct {
	memberRef
	Name string `json:"name"`
}

type requestViewResponse struct {
	ID            string           `json:"id"`
	GroupID       string           `json:"groupId"`
	GroupName     string           `json:"groupName"`
	RequesterID   string           `json:"requesterId"`
	RequesterName string           `json:"requesterName"`
	OnBehalfOf    namedMemberRef   `json:"onBehalfOf"`
	Role          string           `json:"role"`
	Status        string           `json:"status"`
	RequestedAt   time.Time        `json:"requestedAt"`
	Changes       domain.ChangeSet `json:"changes"`
	Reason        string           `json:"reason"`
}

type requestListResponse struct {
	Requests []requestViewResponse `json:"requests"`
	Count    int                   `json:"count"`
}

func toRequestListResponse(views []domain.RequestView) requestListResponse {
	out := make([]requestViewResponse, len(views))
	for i, v := range views {
		out[i] = requestViewResponse{
			ID:            v.RequestID.String(),
			GroupID:       v.GroupID.String(),
			GroupName:     v.GroupName,
			RequesterID:   v.RequesterID.String(),
			RequesterName: v.RequesterName,
			OnBehalfOf:    namedMemberRef{memberRef: toMemberRef(v.OnBehalfOf), Name: v.OnBehalfName},
			Role:          v.Role.String(),
			Status:        v.Status.String(),
			RequestedAt:   v.RequestedAt,
			Changes:       v.Changes,
			Reason:        v.Reason,
		}
	}
	return requestListResponse{Requests: out, Count: len(out)}
}

type eventResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FromStatus *string   `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangeAt   time.Time `json:"changeAt"`
	Comment    *string   `json:"comment,omitempty"`
}

type historyResponse struct {
	Request requestResponse `json:"request"`
	Events  []eventResponse `json:"events"`
}

func toHistoryResponse(h *domain.RequestHistory) historyResponse {
	events := make([]eventResponse, len(h.Events))
	for i, e := range h.Events {
		ev := eventResponse{
			ID:       e.Change.ID.String(),
			UserID:   e.Change.UserID.String(),
			ToStatus: e.Change.ToStatus.String(),
			ChangeAt: e.Change.ChangeAt,
		}
		if e.Change.FromStatus != nil {
			from := e.Change.FromStatus.String()
			ev.FromStatus = &from
		}
		if e.Comment != nil {
			text := e.Comment.Text
			ev.Comment = &text
		}
		events[i] = ev
	}
	return historyResponse{Request: toRequestResponse(&h.Request), Events: events}
}
