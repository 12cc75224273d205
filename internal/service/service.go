package service

import (
	"context"

	"surfjobs-backend/internal/domain"
)

// OrganizationResolver answers which organizations an identity administers.
type OrganizationResolver interface {
	ResolveOwnedOrganizations(ctx context.Context, identity domain.Identity) ([]domain.Organization, error)
	OwnsOrganization(ctx context.Context, identity domain.Identity, orgID string) (bool, error)
}

// ApplicationLifecycleService is the only writer of application records.
type ApplicationLifecycleService interface {
	CreateApplication(ctx context.Context, jobID string, applicant domain.Identity, message string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, applicationID string, requested string, actor domain.Identity) (*domain.Application, error)
}

// ApplicationQueryService serves the read side.
type ApplicationQueryService interface {
	HasApplied(ctx context.Context, jobID string, identity domain.Identity) (bool, error)
	// ListForOrganization trusts its caller to have proven ownership of orgID.
	ListForOrganization(ctx context.Context, orgID string) ([]domain.ApplicationDetail, error)
	ListForOwner(ctx context.Context, owner domain.Identity, orgID string) ([]domain.ApplicationDetail, error)
	ListForApplicant(ctx context.Context, applicant domain.Identity) ([]domain.Application, error)
	GetApplication(ctx context.Context, applicationID string, identity domain.Identity) (*domain.Application, error)
}

// EventRecorder receives application lifecycle events (metrics, audit).
type EventRecorder interface {
	ApplicationEvent(event string)
}

type noopRecorder struct{}

func (noopRecorder) ApplicationEvent(string) {}
