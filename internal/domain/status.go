package domain

import "slices"

// RequestStatus is the lifecycle state of a membership request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusActioned  RequestStatus = "actioned"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// requestTransitions maps a status to the statuses reachable from it in one step.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusActioned, RequestStatusCancelled},
	RequestStatusActioned:  {},
	RequestStatusCancelled: {},
}

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && len(requestTransitions[s]) == 0
}

// AllRequestStatuses returns every status in lifecycle order.
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{RequestStatusPending, RequestStatusActioned, RequestStatusCancelled}
}

// Transitions returns the statuses reachable from s. The slice is a copy.
func Transitions(s RequestStatus) []RequestStatus {
	return slices.Clone(requestTransitions[s])
}

// IsValidTransition reports whether a request may move from one status to another.
func IsValidTransition(from, to RequestStatus) bool {
	return slices.Contains(requestTransitions[from], to)
}
