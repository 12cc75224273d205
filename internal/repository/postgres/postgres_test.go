package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/repository/postgres"
)

func TestMigrate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS job_applications").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, postgres.Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Failure(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err := postgres.Migrate(context.Background(), db)
	assert.ErrorContains(t, err, "failed to apply schema")
}

func TestStore_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	store := postgres.NewStore(db, quietLogger())

	mock.ExpectPing()
	assert.NoError(t, store.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, store.Ping(context.Background()))
}

func TestApplicationRepository_ListByApplicant(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewApplicationRepository(db, quietLogger())
	now := time.Now().UTC()

	mock.ExpectQuery("FROM job_applications WHERE applicant_id = \\$1 ORDER BY created_at DESC").
		WithArgs(applicantID).
		WillReturnRows(sqlmock.NewRows(appCols).
			AddRow(appID, jobID, applicantID, "m", "contacted", now, now))

	items, err := repo.ListByApplicant(context.Background(), applicantID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ApplicationStatusContacted, items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
