package jobs

import (
	"fmt"
	"log/slog"

	"reservation/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	noShowSweepJob *NoShowSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepNoShowsHandler commands.SweepNoShowsCommandHandler,
	sweepCronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		noShowSweepJob: NewNoShowSweepJob(sweepNoShowsHandler, sweepCronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.noShowSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start no-show sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.noShowSweepJob.Stop()
}
