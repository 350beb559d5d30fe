package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a person that can request, approve and hold memberships.
type User struct {
	ID        uuid.UUID
	Username  string
	Role      UserRole
	Enabled   bool
	CreatedAt time.Time
}

// Group is a named set of members.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	Enabled     bool
	CreatedAt   time.Time
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
