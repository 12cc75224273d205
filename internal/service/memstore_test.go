package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"surfjobs-backend/internal/domain"
)

// memStore is an in-memory store that enforces the (job, applicant)
// uniqueness constraint the way the database does.
type memStore struct {
	mu     sync.Mutex
	seq    int
	apps   map[string]*domain.Application
	jobs   map[string]domain.Job
	orgs   []domain.Organization
	clock  func() time.Time
	writes int
}

func newMemStore() *memStore {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	var clockMu sync.Mutex
	return &memStore{
		apps: make(map[string]*domain.Application),
		jobs: make(map[string]domain.Job),
		clock: func() time.Time {
			clockMu.Lock()
			defer clockMu.Unlock()
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (s *memStore) Create(_ context.Context, app *domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return domain.NewError(domain.CodeConflict, "already applied", fmt.Errorf("duplicate key"))
		}
	}
	s.seq++
	now := s.clock()
	app.ID = fmt.Sprintf("app-%d", s.seq)
	app.CreatedAt = now
	app.UpdatedAt = now
	stored := *app
	s.apps[app.ID] = &stored
	s.writes++
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrApplicationMissing
	}
	cp := *app
	return &cp, nil
}

func (s *memStore) ExistsForJobAndApplicant(_ context.Context, jobID, applicantID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.apps {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrApplicationMissing
	}
	app.Status = status
	app.UpdatedAt = s.clock()
	s.writes++
	cp := *app
	return &cp, nil
}

func (s *memStore) ListByOrganization(_ context.Context, orgID string) ([]domain.ApplicationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.ApplicationDetail
	for _, app := range s.apps {
		job := s.jobs[app.JobID]
		if job.OrganizationID == orgID {
			items = append(items, domain.ApplicationDetail{Application: *app, JobTitle: job.Title, OrganizationID: orgID})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (s *memStore) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Application
	for _, app := range s.apps {
		if app.ApplicantID == applicantID {
			items = append(items, *app)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (s *memStore) CountByStatus(_ context.Context) (map[domain.ApplicationStatus]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[domain.ApplicationStatus]int64{}
	for _, app := range s.apps {
		counts[app.Status]++
	}
	return counts, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

// memJobs and memOrgs give the store's job and organization tables their own
// repository types, mirroring postgres.Store.
type memJobs struct{ s *memStore }

func (j memJobs) GetByID(_ context.Context, id string) (*domain.Job, error) {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	job, ok := j.s.jobs[id]
	if !ok {
		return nil, domain.ErrJobMissing
	}
	return &job, nil
}

type memOrgs struct{ s *memStore }

func (o memOrgs) ListByOwner(_ context.Context, owner string) ([]domain.Organization, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var out []domain.Organization
	for _, org := range o.s.orgs {
		if org.OwnerProfileID == owner {
			out = append(out, org)
		}
	}
	return out, nil
}
