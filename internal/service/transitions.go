package service

import "surfjobs-backend/internal/domain"

// TransitionPolicy decides which status changes are allowed. Both arguments
// are already known to be valid statuses.
type TransitionPolicy interface {
	Allowed(from, to domain.ApplicationStatus) bool
}

// PermissiveTransitions lets any status follow any other.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allowed(_, _ domain.ApplicationStatus) bool {
	return true
}

// DirectedTransitions only moves applications forward; archived is terminal.
// Re-applying the current status is accepted.
type DirectedTransitions struct{}

var directedGraph = map[domain.ApplicationStatus][]domain.ApplicationStatus{
	domain.ApplicationStatusPending:   {domain.ApplicationStatusViewed, domain.ApplicationStatusArchived},
	domain.ApplicationStatusViewed:    {domain.ApplicationStatusContacted, domain.ApplicationStatusArchived},
	domain.ApplicationStatusContacted: {domain.ApplicationStatusArchived},
}

func (DirectedTransitions) Allowed(from, to domain.ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range directedGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewTransitionPolicy returns the directed policy when strict is set.
func NewTransitionPolicy(strict bool) TransitionPolicy {
	if strict {
		return DirectedTransitions{}
	}
	return PermissiveTransitions{}
}
