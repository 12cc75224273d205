package jobs

import (
	"context"
	"log/slog"
	"time"

	"surfjobs-backend/internal/config"
	"surfjobs-backend/internal/repository"
)

// StatusGauge receives the per-status totals computed by the report job.
type StatusGauge interface {
	SetApplicationsByStatus(status string, n int64)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	applications repository.ApplicationRepository
	gauge        StatusGauge
	config       *config.Config
	timeout      time.Duration
	log          *slog.Logger
}

// NewJobRunner creates a new job runner with all dependencies. gauge may be nil.
func NewJobRunner(applications repository.ApplicationRepository, gauge StatusGauge, cfg *config.Config, log *slog.Logger) *JobRunner {
	return &JobRunner{
		applications: applications,
		gauge:        gauge,
		config:       cfg,
		timeout:      time.Minute,
		log:          log.With("component", "jobs"),
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and a deadline
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	start := time.Now()
	jr.log.Info("Starting job", "job", jobName)
	if err := jobFunc(ctx); err != nil {
		jr.log.Error("Job failed", "job", jobName, "error", err, "duration", time.Since(start))
		return
	}
	jr.log.Info("Job completed", "job", jobName, "duration", time.Since(start))
}
