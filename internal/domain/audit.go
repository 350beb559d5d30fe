package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is one immutable transition of a request. FromStatus is nil
// for the creation event.
type StatusChange struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	UserID     uuid.UUID
	FromStatus *RequestStatus
	ToStatus   RequestStatus
	ChangeAt   time.Time
}

// IsCreation reports whether this change opened the request.
func (c StatusChange) IsCreation() bool { return c.FromStatus == nil }

// CommentObjectType names the kind of object a comment is attached to.
type CommentObjectType string

const (
	CommentObjectStatusChange CommentObjectType = "status_change"
)

func (t CommentObjectType) String() string { return string(t) }

func (t CommentObjectType) IsValid() bool {
	return t == CommentObjectStatusChange
}

// Comment is a free-text note appended to the timeline of a typed object.
type Comment struct {
	ID        uuid.UUID
	ObjType   CommentObjectType
	ObjID     uuid.UUID
	UserID    uuid.UUID
	Text      string
	CreatedOn time.Time
}
