package domain

// WorkflowConfig holds request workflow parameters.
type WorkflowConfig struct {
	// StateCounter names the counter bumped by every committed graph mutation.
	StateCounter string
	// MaxGroupDepth bounds how far nested group membership is followed when
	// resolving who may approve requests for a group.
	MaxGroupDepth int
}
