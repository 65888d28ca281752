// Package jobs provides scheduled background tasks for the meal ordering
// system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DraftExpiryJob - Runs hourly to purge ordering dialogs abandoned longer
// than the configured idle window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, clock, 24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the schedule keeps running; a failed purge is
// retried naturally on the next tick.
package jobs
