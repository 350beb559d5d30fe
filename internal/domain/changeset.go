package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used for expirations in change-sets.
const DateLayout = "2006-01-02"

// EdgeUpdates holds the edge attributes a caller proposes to change.
// A nil field means "leave as is".
type EdgeUpdates struct {
	Role       *GroupRole
	Expiration *ExpirationUpdate
	Active     *bool
}

// ExpirationUpdate sets or clears an edge expiration. A nil At clears it.
type ExpirationUpdate struct {
	At *time.Time
}

// ExpireAt returns an update that sets the expiration to t.
func ExpireAt(t time.Time) *ExpirationUpdate {
	return &ExpirationUpdate{At: &t}
}

// NoExpiration returns an update that removes the expiration.
func NoExpiration() *ExpirationUpdate {
	return &ExpirationUpdate{}
}

// IsEmpty reports whether no attribute is proposed.
func (u EdgeUpdates) IsEmpty() bool {
	return u.Role == nil && u.Expiration == nil && u.Active == nil
}

// ChangeSet is the stored diff of a request. Only keys that differed from
// the edge when the request was created are present.
type ChangeSet struct {
	Role       *GroupRole `json:"role,omitempty"`
	Expiration *string    `json:"expiration,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

// IsEmpty reports whether the change-set carries no change.
func (c ChangeSet) IsEmpty() bool {
	return c.Role == nil && c.Expiration == nil && c.Active == nil
}

// Keys returns the attribute names present in the change-set.
func (c ChangeSet) Keys() []string {
	var keys []string
	if c.Role != nil {
		keys = append(keys, "role")
	}
	if c.Expiration != nil {
		keys = append(keys, "expiration")
	}
	if c.Active != nil {
		keys = append(keys, "active")
	}
	return keys
}

// Marshal serializes the change-set into its stored document form.
func (c ChangeSet) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalChangeSet decodes a stored change-set document.
func UnmarshalChangeSet(data []byte) (ChangeSet, error) {
	var c ChangeSet
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return ChangeSet{}, fmt.Errorf("unmarshal change-set: %w", err)
	}
	return c, nil
}

// DiffEdge returns the minimal change-set turning edge into edge+updates.
// Proposed values equal to the current ones are dropped. Values are copied,
// so later changes to edge do not affect the result.
func DiffEdge(edge GroupEdge, updates EdgeUpdates) ChangeSet {
	var c ChangeSet

	if updates.Role != nil && *updates.Role != edge.Role {
		role := *updates.Role
		c.Role = &role
	}

	if updates.Expiration != nil {
		proposed := FormatDate(updates.Expiration.At)
		if proposed != FormatDate(edge.Expiration) {
			c.Expiration = &proposed
		}
	}

	if updates.Active != nil && *updates.Active != edge.Active {
		active := *updates.Active
		c.Active = &active
	}

	return c
}

// ApplyTo returns edge with the change-set applied.
func (c ChangeSet) ApplyTo(edge GroupEdge) (GroupEdge, error) {
	if c.Role != nil {
		role, err := ParseGroupRole(string(*c.Role))
		if err != nil {
			return GroupEdge{}, fmt.Errorf("apply role: %w", err)
		}
		edge.Role = role
	}

	if c.Expiration != nil {
		exp, err := ParseDate(*c.Expiration)
		if err != nil {
			return GroupEdge{}, fmt.Errorf("apply expiration: %w", err)
		}
		edge.Expiration = exp
	}

	if c.Active != nil {
		edge.Active = *c.Active
	}

	return edge, nil
}

// FormatDate renders t as a calendar date in UTC; nil renders as "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// ParseDate is the inverse of FormatDate: "" yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", s, ErrValidation)
	}
	return &t, nil
}
