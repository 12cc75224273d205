package postgres

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"surfjobs-backend/internal/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// applicantProfileFKey is the applicant_id foreign key declared in schema.sql.
const applicantProfileFKey = "job_applications_applicant_id_fkey"

func pqCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func pqConstraint(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Constraint
	}
	return ""
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == foreignKeyViolation
}

// translate converts a driver error into a domain error. sql.ErrNoRows becomes
// notFound; anything else is reported as storage unavailability.
func translate(log *slog.Logger, op string, err error, notFound *domain.Error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	log.Error("← Database call failed", "operation", op, "error", err)
	return domain.NewError(domain.CodeStorageUnavailable, "storage unavailable", err)
}
