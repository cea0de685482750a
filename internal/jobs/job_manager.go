package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverAssignmentJob *DriverAssignmentJob
	cartSessionSweepJob *CartSessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignReadyOrdersHandler AssignReadyOrdersHandler,
	expireCartSessionsHandler ExpireCartSessionsHandler,
	cartSessionTTL time.Duration,
	observer JobObserver,
	logger *slog.Logger,
) (*JobManager, error) {
	sweep, err := NewCartSessionSweepJob(expireCartSessionsHandler, cartSessionTTL, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart session sweep job: %w", err)
	}

	return &JobManager{
		driverAssignmentJob: NewDriverAssignmentJob(assignReadyOrdersHandler, observer, logger),
		cartSessionSweepJob: sweep,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver assignment job: %w", err)
	}

	if err := jm.cartSessionSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.driverAssignmentJob.Stop()
		return fmt.Errorf("failed to start cart session sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartSessionSweepJob.Stop()
	jm.driverAssignmentJob.Stop()
}
