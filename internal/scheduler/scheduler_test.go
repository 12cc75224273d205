package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfjobs-backend/internal/config"
	"surfjobs-backend/internal/jobs"
	"surfjobs-backend/internal/logger"
)

func TestNewScheduler_RegistersApplicationReport(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{ApplicationReport: "0 0 * * * *"}}
	s, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg, logger.Discard()), logger.Discard())
	require.NoError(t, err)

	assert.True(t, s.IsRunning())
	assert.Len(t, s.cron.Entries(), 1)

	s.Start()
	next := s.NextRun()
	s.Stop()
	assert.False(t, next.IsZero())
	assert.Equal(t, 0, next.Minute())
	assert.Equal(t, 0, next.Second())
}

func TestNewScheduler_RejectsBadSpec(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{ApplicationReport: "every hour"}}
	_, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg, logger.Discard()), logger.Discard())
	assert.Error(t, err)
}
