package service

import (
	"context"
	"log/slog"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/logger"
	"surfjobs-backend/internal/repository"
)

type organizationResolver struct {
	orgRepo repository.OrganizationRepository
	log     *slog.Logger
}

func NewOrganizationResolver(orgRepo repository.OrganizationRepository, log *slog.Logger) OrganizationResolver {
	return &organizationResolver{
		orgRepo: orgRepo,
		log:     logger.WithService(log, "organization_resolver"),
	}
}

// ResolveOwnedOrganizations returns every organization whose owner is the
// identity. An empty result is not an error.
func (r *organizationResolver) ResolveOwnedOrganizations(ctx context.Context, identity domain.Identity) ([]domain.Organization, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	orgs, err := r.orgRepo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		r.log.Error("failed to resolve owned organizations", "user_id", identity.UserID, "error", err)
		return nil, err
	}
	return orgs, nil
}

func (r *organizationResolver) OwnsOrganization(ctx context.Context, identity domain.Identity, orgID string) (bool, error) {
	orgs, err := r.ResolveOwnedOrganizations(ctx, identity)
	if err != nil {
		return false, err
	}
	return containsOrganization(orgs, orgID), nil
}

func containsOrganization(orgs []domain.Organization, orgID string) bool {
	for _, o := range orgs {
		if o.ID == orgID {
			return true
		}
	}
	return false
}
