package jobs

import (
	"context"
	"log/slog"
	"time"

	"reservation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NoShowSweepJob periodically sweeps departed trips for bookings still
// CONFIRMED and marks them NO_SHOW.
type NoShowSweepJob struct {
	handler  commands.SweepNoShowsCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNoShowSweepJob creates the sweep job. The cron spec uses the
// seconds-resolution format of robfig/cron.
func NewNoShowSweepJob(handler commands.SweepNoShowsCommandHandler, cronSpec string, logger *slog.Logger) *NoShowSweepJob {
	return &NoShowSweepJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "no_show_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *NoShowSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepNoShowsCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "No-show sweep command rejected", "error", err)
			return
		}

		marked, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "No-show sweep failed", "error", err)
			return
		}

		if marked > 0 {
			j.logger.InfoContext(ctx, "No-show sweep completed", "marked", marked)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "No-show sweep job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the sweep job.
func (j *NoShowSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "No-show sweep job stopped")
}
