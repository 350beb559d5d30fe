package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrInvalidRoleForMember):
		writeError(w, http.StatusUnprocessableEntity, "invalid_role_for_member",
			"groups can only be added with the member role")
	case errors.Is(err, domain.ErrMemberNotFound):
		writeError(w, http.StatusNotFound, "member_not_found",
			"the member does not belong to this group")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, "invalid_status_transition", transitionMessage(err))
	case errors.As(err, &vErr):
		fields := make([]fieldMessage, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldMessage{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: vErr.Error(),
			Fields:  fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "not allowed to perform this action")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", "conflicting concurrent change, retry")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func transitionMessage(err error) string {
	var tErr *domain.TransitionError
	if errors.As(err, &tErr) {
		return "cannot move a request from " + tErr.From.String() + " to " + tErr.To.String()
	}
	return "the request cannot move to that status"
}
