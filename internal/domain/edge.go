package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GroupRole is the role a member holds on a group edge.
type GroupRole string

const (
	RoleMember  GroupRole = "member"
	RoleManager GroupRole = "manager"
	RoleOwner   GroupRole = "owner"
	// RoleNPOwner is an owner that does not inherit the group's permissions.
	RoleNPOwner GroupRole = "np-owner"
)

func (r GroupRole) String() string { return string(r) }

func (r GroupRole) IsValid() bool {
	switch r {
	case RoleMember, RoleManager, RoleOwner, RoleNPOwner:
		return true
	}
	return false
}

// CanApprove reports whether holders of r may approve requests for the group.
func (r GroupRole) CanApprove() bool {
	switch r {
	case RoleManager, RoleOwner, RoleNPOwner:
		return true
	}
	return false
}

// ApproverRoles lists the roles for which CanApprove is true.
func ApproverRoles() []GroupRole {
	return []GroupRole{RoleManager, RoleOwner, RoleNPOwner}
}

// ParseGroupRole decodes a role from its symbolic form.
func ParseGroupRole(s string) (GroupRole, error) {
	r := GroupRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("role %q: %w", s, ErrValidation)
	}
	return r, nil
}

// ValidateRoleForMember enforces that groups can only be plain members.
func ValidateRoleForMember(member MemberRef, role GroupRole) error {
	if !role.IsValid() {
		return NewValidationError("role", "unknown role")
	}
	if member.MemberType() == MemberTypeGroup && role != RoleMember {
		return fmt.Errorf("group %s as %s: %w", member.MemberID(), role, ErrInvalidRoleForMember)
	}
	return nil
}

// GroupEdge records that a member belongs to a group with a role.
// There is at most one edge per (GroupID, Member).
type GroupEdge struct {
	ID         uuid.UUID
	GroupID    uuid.UUID
	Member     MemberRef
	Role       GroupRole
	Expiration *time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EdgeUpdateParams is the set of edge columns written when a change-set is applied.
type EdgeUpdateParams struct {
	Role       GroupRole
	Expiration *time.Time
	Active     bool
}
