// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the booking service.
//
// # Available Jobs
//
// 1. JobExpiryJob - Runs every minute to cancel pending jobs whose scheduled
// start has passed without a translator accepting them
// 2. SessionReminderJob - Runs every minute to push a reminder to translators
// whose accepted sessions start within the reminder window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, reminderHandler, window, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a job run never
// takes the process down.
package jobs
