package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MemberType discriminates the two kinds of group members.
type MemberType string

const (
	MemberTypeUser  MemberType = "user"
	MemberTypeGroup MemberType = "group"
)

func (t MemberType) String() string { return string(t) }

func (t MemberType) IsValid() bool {
	switch t {
	case MemberTypeUser, MemberTypeGroup:
		return true
	}
	return false
}

// MemberRef identifies either a user or a group. The only implementations
// are UserRef and GroupRef.
type MemberRef interface {
	MemberType() MemberType
	MemberID() uuid.UUID
	String() string
	isMemberRef()
}

// UserRef references a user.
type UserRef struct {
	UserID uuid.UUID
}

func (r UserRef) MemberType() MemberType { return MemberTypeUser }
func (r UserRef) MemberID() uuid.UUID    { return r.UserID }
func (r UserRef) String() string         { return "user:" + r.UserID.String() }
func (UserRef) isMemberRef()             {}

// GroupRef references a group.
type GroupRef struct {
	GroupID uuid.UUID
}

func (r GroupRef) MemberType() MemberType { return MemberTypeGroup }
func (r GroupRef) MemberID() uuid.UUID    { return r.GroupID }
func (r GroupRef) String() string         { return "group:" + r.GroupID.String() }
func (GroupRef) isMemberRef()             {}

// NewMemberRef builds a MemberRef from its stored (type, id) pair.
func NewMemberRef(t MemberType, id uuid.UUID) (MemberRef, error) {
	switch t {
	case MemberTypeUser:
		return UserRef{UserID: id}, nil
	case MemberTypeGroup:
		return GroupRef{GroupID: id}, nil
	}
	return nil, fmt.Errorf("member type %q: %w", t, ErrValidation)
}

// SameMember reports whether two references point at the same entity.
func SameMember(a, b MemberRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.MemberType() == b.MemberType() && a.MemberID() == b.MemberID()
}
