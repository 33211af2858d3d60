// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the pickup workflow.
//
// # Available Jobs
//
// 1. DailyReportJob - Runs at midnight to log the previous day's intake, ready
// and pickup counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(countOrdersByDayHandler, systemClock, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Report failures are logged and skipped; the job retries at the next
// scheduled run.
package jobs
