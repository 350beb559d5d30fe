package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
	"github.com/heartmarshall/accessgraph-backend/internal/service/workflow"
	"github.com/heartmarshall/accessgraph-backend/pkg/ctxutil"
)

//go:generate moq -out workflow_service_mock_test.go -pkg rest . workflowService
//go:generate moq -out request_query_service_mock_test.go -pkg rest . requestQueryService

type workflowService interface {
	RequestJoin(ctx context.Context, input workflow.MembershipInput) (*domain.Request, error)
	AddMember(ctx context.Context, input workflow.MembershipInput) (*domain.Request, error)
	EditMember(ctx context.Context, input workflow.MembershipInput) (*domain.Request, error)
	RevokeMember(ctx context.Context, input workflow.RevokeInput) (*domain.Request, error)
	TransitionRequest(ctx context.Context, input workflow.TransitionInput) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.RequestHistory, error)
	StateVersion(ctx context.Context) (int64, error)
}

type requestQueryService interface {
	GetRequestsByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) ([]domain.RequestView, error)
	CountRequestsByGroup(ctx context.Context, groupID uuid.UUID, filter domain.RequestFilter) (int, error)
	PendingRequestsForOwner(ctx context.Context, userID uuid.UUID) ([]domain.RequestView, error)
}

// RequestHandler serves the membership request API.
type RequestHandler struct {
	workflow workflowService
	queries  requestQueryService
	log      *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(wf workflowService, queries requestQueryService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		workflow: wf,
		queries:  queries,
		log:      logger.With("handler", "requests"),
	}
}

// RequestJoin handles POST /api/groups/{groupID}/requests.
// The member defaults to the caller.
func (h *RequestHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	input, ok := h.membershipInput(w, r, false)
	if !ok {
		return
	}
	if input.Member == nil {
		input.Member = domain.UserRef{UserID: userID}
	}

	req, err := h.workflow.RequestJoin(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRequestResponse(req))
}

// AddMember handles POST /api/groups/{groupID}/members.
func (h *RequestHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	h.mutateMember(w, r, http.StatusCreated, h.workflow.AddMember)
}

// EditMember handles PATCH /api/groups/{groupID}/members.
func (h *RequestHandler) EditMember(w http.ResponseWriter, r *http.Request) {
	h.mutateMember(w, r, http.StatusOK, h.workflow.EditMember)
}

func (h *RequestHandler) mutateMember(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(context.Context, workflow.MembershipInput) (*domain.Request, error),
) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	input, ok := h.membershipInput(w, r, true)
	if !ok {
		return
	}

	req, err := op(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, status, toRequestResponse(req))
}

// RevokeMember handles POST /api/groups/{groupID}/members/revoke.
func (h *RequestHandler) RevokeMember(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	var body revokeRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	member, err := body.Member.toDomain("member")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	req, err := h.workflow.RevokeMember(r.Context(), workflow.RevokeInput{
		GroupID: groupID,
		Member:  member,
		Reason:  body.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// UpdateStatus handles POST /api/requests/{requestID}/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	requestID, ok := pathUUID(w, r, "requestID")
	if !ok {
		return
	}

	var body statusRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	err := h.workflow.TransitionRequest(r.Context(), workflow.TransitionInput{
		RequestID: requestID,
		Status:    domain.RequestStatus(body.Status),
		Reason:    body.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	history, err := h.workflow.GetRequest(r.Context(), requestID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}

// GetRequest handles GET /api/requests/{requestID}.
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	requestID, ok := pathUUID(w, r, "requestID")
	if !ok {
		return
	}

	history, err := h.workflow.GetRequest(r.Context(), requestID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}

// ListGroupRequests handles GET /api/groups/{groupID}/requests?status=&user=.
func (h *RequestHandler) ListGroupRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	groupID, filter, ok := h.groupFilter(w, r)
	if !ok {
		return
	}

	views, err := h.queries.GetRequestsByGroup(r.Context(), groupID, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestListResponse(views))
}

// CountGroupRequests handles GET /api/groups/{groupID}/requests/count?status=&user=.
func (h *RequestHandler) CountGroupRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	groupID, filter, ok := h.groupFilter(w, r)
	if !ok {
		return
	}

	n, err := h.queries.CountRequestsByGroup(r.Context(), groupID, filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// PendingForMe handles GET /api/me/requests/pending: pending requests across
// every group the caller can approve.
func (h *RequestHandler) PendingForMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	views, err := h.queries.PendingRequestsForOwner(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestListResponse(views))
}

// StateVersion handles GET /api/state-version.
func (h *RequestHandler) StateVersion(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	v, err := h.workflow.StateVersion(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"version": v})
}

func (h *RequestHandler) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// membershipInput decodes the body shared by join, add and edit.
func (h *RequestHandler) membershipInput(w http.ResponseWriter, r *http.Request, memberRequired bool) (workflow.MembershipInput, bool) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return workflow.MembershipInput{}, false
	}

	var body membershipRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return workflow.MembershipInput{}, false
	}

	input := workflow.MembershipInput{GroupID: groupID, Reason: body.Reason}

	var fieldErrs []domain.FieldError
	collect := func(err error) {
		if vErr, ok := err.(*domain.ValidationError); ok {
			fieldErrs = append(fieldErrs, vErr.Errors...)
		}
	}

	switch {
	case body.Member != nil:
		member, err := body.Member.toDomain("member")
		collect(err)
		input.Member = member
	case memberRequired:
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "member", Message: "required"})
	}

	role, err := body.role()
	collect(err)
	input.Role = role

	exp, err := body.expiration()
	collect(err)
	input.Expiration = exp

	if len(fieldErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fieldErrs))
		return workflow.MembershipInput{}, false
	}
	return input, true
}

func (h *RequestHandler) groupFilter(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.RequestFilter, bool) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return uuid.Nil, domain.RequestFilter{}, false
	}

	var filter domain.RequestFilter
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status := domain.RequestStatus(raw)
		if !status.IsValid() {
			handleError(h.log, w, r, domain.NewValidationError("status", "must be pending, actioned or cancelled"))
			return uuid.Nil, domain.RequestFilter{}, false
		}
		filter.Status = &status
	}

	if raw := q.Get("user"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("user", "must be a UUID"))
			return uuid.Nil, domain.RequestFilter{}, false
		}
		filter.UserID = &userID
	}

	return groupID, filter, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_path", name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
