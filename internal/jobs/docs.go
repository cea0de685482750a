// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that no request triggers.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every second to hand unassigned ready orders to the least loaded driver
// 2. CartSessionSweepJob - Runs every minute to discard cart sessions idle for longer than the TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(assignHandler, expireHandler, 24*time.Hour, observer, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no ready orders, no drivers)
// - Sweep job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
// - Every run is reported to the JobObserver with outcome "ok", "idle" or "error"
package jobs
