package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"surfjobs-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.JobRepository
	repository.OrganizationRepository
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		db:                     db,
		ApplicationRepository:  NewApplicationRepository(db, log),
		JobRepository:          NewJobRepository(db, log),
		OrganizationRepository: NewOrganizationRepository(db, log),
	}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
