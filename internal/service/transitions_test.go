package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/service"
)

func TestPermissiveTransitions(t *testing.T) {
	policy := service.NewTransitionPolicy(false)
	for _, from := range domain.ApplicationStatuses {
		for _, to := range domain.ApplicationStatuses {
			assert.True(t, policy.Allowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestDirectedTransitions(t *testing.T) {
	policy := service.NewTransitionPolicy(true)

	allowed := map[[2]domain.ApplicationStatus]bool{
		{domain.ApplicationStatusPending, domain.ApplicationStatusViewed}:     true,
		{domain.ApplicationStatusPending, domain.ApplicationStatusArchived}:   true,
		{domain.ApplicationStatusViewed, domain.ApplicationStatusContacted}:   true,
		{domain.ApplicationStatusViewed, domain.ApplicationStatusArchived}:    true,
		{domain.ApplicationStatusContacted, domain.ApplicationStatusArchived}: true,
	}
	for _, from := range domain.ApplicationStatuses {
		for _, to := range domain.ApplicationStatuses {
			want := from == to || allowed[[2]domain.ApplicationStatus{from, to}]
			assert.Equal(t, want, policy.Allowed(from, to), "%s -> %s", from, to)
		}
	}
}
