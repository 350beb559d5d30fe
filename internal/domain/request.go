package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request is a proposed, auditable change to one group edge.
type Request struct {
	ID                uuid.UUID
	RequesterID       uuid.UUID
	RequestingGroupID uuid.UUID
	OnBehalfOf        MemberRef
	EdgeID            uuid.UUID
	RequestedAt       time.Time
	Status            RequestStatus
	Changes           ChangeSet
}

// RequestView is the read model used by dashboards and notifications.
type RequestView struct {
	RequestID     uuid.UUID
	GroupID       uuid.UUID
	GroupName     string
	RequesterID   uuid.UUID
	RequesterName string
	OnBehalfOf    MemberRef
	OnBehalfName  string
	Role          GroupRole
	Status        RequestStatus
	RequestedAt   time.Time
	Changes       ChangeSet
	// Reason is the comment attached to the request's creation.
	Reason string
}

// RequestFilter narrows request queries for a group.
type RequestFilter struct {
	Status *RequestStatus
	// UserID restricts results to requests made on behalf of this user.
	UserID *uuid.UUID
}

// RequestHistory is a request together with its audit timeline, oldest first.
type RequestHistory struct {
	Request Request
	Events  []StatusEvent
}

// StatusEvent pairs a status change with its comment.
type StatusEvent struct {
	Change  StatusChange
	Comment *Comment
}
