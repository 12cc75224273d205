package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/repository"
)

type jobRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewJobRepository(db *sql.DB, log *slog.Logger) repository.JobRepository {
	return &jobRepository{db: db, log: log}
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if !isUUID(id) {
		return nil, domain.ErrJobMissing
	}
	j := &domain.Job{}
	query := `SELECT id, organization_id, title, slug, is_active FROM jobs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.OrganizationID, &j.Title, &j.Slug, &j.IsActive)
	if err != nil {
		return nil, translate(r.log, "jobs.get", err, domain.ErrJobMissing)
	}
	return j, nil
}
