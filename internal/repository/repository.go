package repository

import (
	"context"

	"surfjobs-backend/internal/domain"
)

// ApplicationRepository persists applications. Create must enforce the
// (job_id, applicant_id) uniqueness constraint and report a violation as a
// domain conflict error.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	ListByOrganization(ctx context.Context, orgID string) ([]domain.ApplicationDetail, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error)
}

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Job, error)
}

type OrganizationRepository interface {
	ListByOwner(ctx context.Context, ownerProfileID string) ([]domain.Organization, error)
}
