package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/repository"
)

const applicationColumns = `id, job_id, applicant_id, message, status, created_at, updated_at`

type applicationRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewApplicationRepository(db *sql.DB, log *slog.Logger) repository.ApplicationRepository {
	return &applicationRepository{db: db, log: log}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner, a *domain.Application) error {
	return row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	id := uuid.New().String()
	now := time.Now().UTC()
	query := `INSERT INTO job_applications (id, job_id, applicant_id, message, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	r.log.Debug("→ Database call", "operation", "applications.create", "job_id", a.JobID, "applicant_id", a.ApplicantID)
	if _, err := r.db.ExecContext(ctx, query, id, a.JobID, a.ApplicantID, a.Message, a.Status, now, now); err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.NewError(domain.CodeConflict, domain.ErrAlreadyApplied.Message, err)
		case isForeignKeyViolation(err):
			if pqConstraint(err) == applicantProfileFKey {
				return domain.NewError(domain.CodeNotFound, domain.ErrProfileMissing.Message, err)
			}
			return domain.NewError(domain.CodeNotFound, domain.ErrJobMissing.Message, err)
		}
		return translate(r.log, "applications.create", err, nil)
	}
	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	if !isUUID(id) {
		return nil, domain.ErrApplicationMissing
	}
	a := &domain.Application{}
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	if err := scanApplication(r.db.QueryRowContext(ctx, query, id), a); err != nil {
		return nil, translate(r.log, "applications.get", err, domain.ErrApplicationMissing)
	}
	return a, nil
}

// ExistsForJobAndApplicant reports false for ids that are not UUIDs: no row
// can reference them.
func (r *applicationRepository) ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID string) (bool, error) {
	if !isUUID(jobID) || !isUUID(applicantID) {
		return false, nil
	}
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		return false, translate(r.log, "applications.exists", err, nil)
	}
	return exists, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	a := &domain.Application{}
	query := `UPDATE job_applications SET status = $1, updated_at = $2 WHERE id = $3 RETURNING ` + applicationColumns
	r.log.Debug("→ Database call", "operation", "applications.update_status", "application_id", id, "status", status)
	if err := scanApplication(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id), a); err != nil {
		return nil, translate(r.log, "applications.update_status", err, domain.ErrApplicationMissing)
	}
	return a, nil
}

func (r *applicationRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.ApplicationDetail, error) {
	query := `SELECT a.id, a.job_id, a.applicant_id, a.message, a.status, a.created_at, a.updated_at,
	                 j.title, j.organization_id, COALESCE(p.full_name, ''), COALESCE(p.email, '')
	          FROM job_applications a
	          JOIN jobs j ON j.id = a.job_id
	          LEFT JOIN profiles p ON p.id = a.applicant_id
	          WHERE j.organization_id = $1
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, translate(r.log, "applications.list_by_organization", err, nil)
	}
	defer rows.Close()

	var items []domain.ApplicationDetail
	for rows.Next() {
		var d domain.ApplicationDetail
		if err := rows.Scan(&d.ID, &d.JobID, &d.ApplicantID, &d.Message, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.JobTitle, &d.OrganizationID, &d.ApplicantName, &d.ApplicantEmail); err != nil {
			return nil, translate(r.log, "applications.list_by_organization", err, nil)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(r.log, "applications.list_by_organization", err, nil)
	}
	return items, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE applicant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, applicantID)
	if err != nil {
		return nil, translate(r.log, "applications.list_by_applicant", err, nil)
	}
	defer rows.Close()

	var items []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, translate(r.log, "applications.list_by_applicant", err, nil)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(r.log, "applications.list_by_applicant", err, nil)
	}
	return items, nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM job_applications GROUP BY status`)
	if err != nil {
		return nil, translate(r.log, "applications.count_by_status", err, nil)
	}
	defer rows.Close()

	counts := make(map[domain.ApplicationStatus]int64, len(domain.ApplicationStatuses))
	for _, s := range domain.ApplicationStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status domain.ApplicationStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, translate(r.log, "applications.count_by_status", err, nil)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, translate(r.log, "applications.count_by_status", err, nil)
	}
	return counts, nil
}
