// Package jobs provides scheduled background tasks for the reservation
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The one job currently scheduled is NoShowSweepJob: after a trip departs,
// every booking still CONFIRMED on it is swept to NO_SHOW so the seat ledger
// reflects who actually travelled.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepNoShowsHandler, cronSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule comes from configuration (NOSHOW_SWEEP_CRON). The
// default "0 */5 * * * *" runs every five minutes, which is frequent enough:
// a no-show marking only has to land some time after departure, not at the
// departure instant.
package jobs
