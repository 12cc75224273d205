package service

import (
	"context"
	"log/slog"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/logger"
	"surfjobs-backend/internal/metrics"
	"surfjobs-backend/internal/repository"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	orgResolver OrganizationResolver
	transitions TransitionPolicy
	events      EventRecorder
	log         *slog.Logger
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	orgResolver OrganizationResolver,
	transitions TransitionPolicy,
	events EventRecorder,
	log *slog.Logger,
) ApplicationLifecycleService {
	if transitions == nil {
		transitions = PermissiveTransitions{}
	}
	if events == nil {
		events = noopRecorder{}
	}
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		orgResolver: orgResolver,
		transitions: transitions,
		events:      events,
		log:         logger.WithService(log, "applications"),
	}
}

// CreateApplication submits a pending application for the applicant. The
// existence pre-check gives a fast conflict; the store's unique constraint
// settles concurrent submissions and is reported with the same error.
func (s *applicationService) CreateApplication(ctx context.Context, jobID string, applicant domain.Identity, message string) (_ *domain.Application, err error) {
	logger.EnterMethod(s.log, "CreateApplication", "job_id", jobID)
	defer func() { s.exitMethod("CreateApplication", err, "job_id", jobID) }()
	if !applicant.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	applied, err := s.appRepo.ExistsForJobAndApplicant(ctx, job.ID, applicant.UserID)
	if err != nil {
		return nil, err
	}
	if applied {
		s.events.ApplicationEvent(metrics.EventDuplicate)
		s.log.Info("duplicate application rejected", "job_id", job.ID, "applicant_id", applicant.UserID)
		return nil, domain.ErrAlreadyApplied
	}

	app := &domain.Application{
		JobID:       job.ID,
		ApplicantID: applicant.UserID,
		Message:     message,
		Status:      domain.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			s.events.ApplicationEvent(metrics.EventDuplicate)
			s.log.Info("concurrent duplicate application rejected", "job_id", job.ID, "applicant_id", applicant.UserID)
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}

	s.events.ApplicationEvent(metrics.EventCreated)
	s.log.Info("application created", "application_id", app.ID, "job_id", app.JobID, "applicant_id", app.ApplicantID)
	return app, nil
}

// UpdateStatus moves an application to the requested status on behalf of the
// organization that owns the application's job.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID string, requested string, actor domain.Identity) (_ *domain.Application, err error) {
	logger.EnterMethod(s.log, "UpdateStatus", "application_id", applicationID, "requested", requested)
	defer func() { s.exitMethod("UpdateStatus", err, "application_id", applicationID) }()
	owned, err := s.orgResolver.ResolveOwnedOrganizations(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, domain.ErrNoOrganization
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	// Authorize through the job's organization, never through "the caller's first organization".
	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !containsOrganization(owned, job.OrganizationID) {
		s.events.ApplicationEvent(metrics.EventForbidden)
		s.log.Warn("status change by non-owner rejected", "application_id", app.ID, "user_id", actor.UserID)
		return nil, domain.ErrNotJobOwner
	}

	next, ok := domain.ParseApplicationStatus(requested)
	if !ok {
		return nil, domain.NewValidationError("status", "status must be one of pending, viewed, contacted, archived")
	}
	if !s.transitions.Allowed(app.Status, next) {
		return nil, domain.NewValidationError("status", "invalid status transition from "+string(app.Status)+" to "+string(next))
	}

	updated, err := s.appRepo.UpdateStatus(ctx, app.ID, next)
	if err != nil {
		return nil, err
	}

	s.events.ApplicationEvent(metrics.EventStatusChanged)
	s.log.Info("application status changed", "application_id", updated.ID, "from", app.Status, "to", updated.Status, "user_id", actor.UserID)
	return updated, nil
}

// exitMethod pairs every EnterMethod. Only infrastructure failures log at
// error level; domain rejections are ordinary outcomes.
func (s *applicationService) exitMethod(method string, err error, args ...any) {
	switch {
	case err == nil:
		logger.ExitMethod(s.log, method, args...)
	case domain.IsCode(err, domain.CodeStorageUnavailable) || domain.CodeOf(err) == "":
		logger.ExitMethodWithError(s.log, method, err, args...)
	default:
		logger.ExitMethod(s.log, method, append(args, "rejected", string(domain.CodeOf(err)))...)
	}
}
