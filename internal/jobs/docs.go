// Package jobs provides scheduled background tasks for the service ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreStatsJob - Periodically logs the number of stored service orders and hub registrations
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required repositories
//	jobManager := jobs.NewJobManager(orderRepository, listenerRepository, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stats job schedule is configurable and uses cron expressions with a
// seconds field, e.g. "0 * * * * *" to run once a minute.
//
// # Error Handling
//
// Repository failures inside a job run are logged and the run is skipped;
// the schedule keeps firing. Failed job starts return an error to the caller.
package jobs
