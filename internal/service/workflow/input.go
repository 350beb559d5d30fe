package workflow

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/domain"
)

// MaxReasonLength bounds the free-text reason attached to every status change.
const MaxReasonLength = 1000

func validateReason(reason string, errs []domain.FieldError) []domain.FieldError {
	r := strings.TrimSpace(reason)
	if r == "" {
		return append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(r) > MaxReasonLength {
		return append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	return errs
}

func validateMember(member domain.MemberRef, errs []domain.FieldError) []domain.FieldError {
	if member == nil || member.MemberID() == uuid.Nil {
		return append(errs, domain.FieldError{Field: "member", Message: "required"})
	}
	return errs
}

func validateUpdates(updates domain.EdgeUpdates, errs []domain.FieldError) []domain.FieldError {
	if updates.Role != nil && !updates.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}
	return errs
}

// PersistChangesInput describes a proposed change to the edge between Member and GroupID.
type PersistChangesInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
	Member      domain.MemberRef
	// Status is the initial request status: pending, or actioned for
	// changes that are approved on creation.
	Status     domain.RequestStatus
	Reason     string
	CreateEdge bool
	Updates    domain.EdgeUpdates
}

// Validate checks all fields and collects all errors.
func (i PersistChangesInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.RequesterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}
	errs = validateMember(i.Member, errs)
	if i.Status != domain.RequestStatusPending && i.Status != domain.RequestStatusActioned {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending or actioned"})
	}
	errs = validateReason(i.Reason, errs)
	errs = validateUpdates(i.Updates, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput moves a request to a new status on behalf of UserID.
type UpdateStatusInput struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	Status    domain.RequestStatus
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = validateReason(i.Reason, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput is UpdateStatusInput with the actor taken from the context.
type TransitionInput struct {
	RequestID uuid.UUID
	Status    domain.RequestStatus
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = validateReason(i.Reason, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MembershipInput carries the target and proposed attributes of a membership.
// Nil Role keeps the current role (member for new edges); nil Expiration
// keeps the current expiration.
type MembershipInput struct {
	GroupID    uuid.UUID
	Member     domain.MemberRef
	Role       *domain.GroupRole
	Expiration *domain.ExpirationUpdate
	Reason     string
}

// Validate checks all fields and collects all errors.
func (i MembershipInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	errs = validateMember(i.Member, errs)
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}
	if i.Expiration != nil && i.Expiration.At != nil && !i.Expiration.At.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "expiration", Message: "must be in the future"})
	}
	errs = validateReason(i.Reason, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// updates builds the edge updates for a membership that should end up active.
func (i MembershipInput) updates() domain.EdgeUpdates {
	active := true
	return domain.EdgeUpdates{
		Role:       i.Role,
		Expiration: i.Expiration,
		Active:     &active,
	}
}

// RevokeInput deactivates the membership of Member in GroupID.
type RevokeInput struct {
	GroupID uuid.UUID
	Member  domain.MemberRef
	Reason  string
}

// Validate checks all fields and collects all errors.
func (i RevokeInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	errs = validateMember(i.Member, errs)
	errs = validateReason(i.Reason, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
