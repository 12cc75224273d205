package service

import (
	"context"
	"log/slog"
	"sort"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/logger"
	"surfjobs-backend/internal/repository"
)

type applicationQueryService struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	orgResolver OrganizationResolver
	log         *slog.Logger
}

func NewApplicationQueryService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	orgResolver OrganizationResolver,
	log *slog.Logger,
) ApplicationQueryService {
	return &applicationQueryService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		orgResolver: orgResolver,
		log:         logger.WithService(log, "application_queries"),
	}
}

// HasApplied reports false for anonymous callers instead of failing.
func (s *applicationQueryService) HasApplied(ctx context.Context, jobID string, identity domain.Identity) (bool, error) {
	if !identity.Authenticated() {
		return false, nil
	}
	return s.appRepo.ExistsForJobAndApplicant(ctx, jobID, identity.UserID)
}

func (s *applicationQueryService) ListForOrganization(ctx context.Context, orgID string) ([]domain.ApplicationDetail, error) {
	items, err := s.appRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.ApplicationDetail{}
	}
	return items, nil
}

// ListForOwner lists applications for orgID after checking that owner holds
// it. With an empty orgID every owned organization is included.
func (s *applicationQueryService) ListForOwner(ctx context.Context, owner domain.Identity, orgID string) ([]domain.ApplicationDetail, error) {
	owned, err := s.orgResolver.ResolveOwnedOrganizations(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, domain.ErrNoOrganization
	}
	if orgID != "" {
		if !containsOrganization(owned, orgID) {
			s.log.Warn("listing for a foreign organization rejected", "user_id", owner.UserID, "organization_id", orgID)
			return nil, domain.NewError(domain.CodeForbidden, "organization belongs to another owner", nil)
		}
		return s.ListForOrganization(ctx, orgID)
	}

	all := []domain.ApplicationDetail{}
	for _, org := range owned {
		items, err := s.ListForOrganization(ctx, org.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	if len(owned) > 1 {
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		})
	}
	return all, nil
}

func (s *applicationQueryService) ListForApplicant(ctx context.Context, applicant domain.Identity) ([]domain.Application, error) {
	if !applicant.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	items, err := s.appRepo.ListByApplicant(ctx, applicant.UserID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Application{}
	}
	return items, nil
}

// GetApplication returns the application to its applicant or to the owner of
// the job's organization.
func (s *applicationQueryService) GetApplication(ctx context.Context, applicationID string, identity domain.Identity) (*domain.Application, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID == identity.UserID {
		return app, nil
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	owns, err := s.orgResolver.OwnsOrganization(ctx, identity, job.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.NewError(domain.CodeForbidden, "application belongs to another organization", nil)
	}
	return app, nil
}
