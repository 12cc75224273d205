package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/repository"
)

type organizationRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewOrganizationRepository(db *sql.DB, log *slog.Logger) repository.OrganizationRepository {
	return &organizationRepository{db: db, log: log}
}

// ListByOwner returns the organizations administered by the profile, oldest first.
func (r *organizationRepository) ListByOwner(ctx context.Context, ownerProfileID string) ([]domain.Organization, error) {
	query := `SELECT id, name, slug, owner_profile_id, created_at FROM organizations
	          WHERE owner_profile_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerProfileID)
	if err != nil {
		return nil, translate(r.log, "organizations.list_by_owner", err, nil)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.OwnerProfileID, &createdAt); err != nil {
			return nil, translate(r.log, "organizations.list_by_owner", err, nil)
		}
		o.CreatedOn = createdAt.Format("2006-01-02")
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(r.log, "organizations.list_by_owner", err, nil)
	}
	return orgs, nil
}
