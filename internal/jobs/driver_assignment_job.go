package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const driverAssignmentJobName = "driver_assignment"

// AssignReadyOrdersHandler is the use case driven by DriverAssignmentJob.
type AssignReadyOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignReadyOrdersCommand) (int, error)
}

// DriverAssignmentJob manages the scheduled assignment of drivers to ready orders.
// Runs every second so that ready orders do not wait for a driver.
type DriverAssignmentJob struct {
	handler  AssignReadyOrdersHandler
	observer JobObserver
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverAssignmentJob creates a new job for assigning drivers.
func NewDriverAssignmentJob(handler AssignReadyOrdersHandler, observer JobObserver, logger *slog.Logger) *DriverAssignmentJob {
	if observer == nil {
		observer = nopObserver{}
	}
	return &DriverAssignmentJob{
		handler:  handler,
		observer: observer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_assignment_job"),
	}
}

// Run performs one assignment pass.
func (j *DriverAssignmentJob) Run(ctx context.Context) {
	assigned, err := j.handler.Handle(ctx, commands.NewAssignReadyOrdersCommand())
	switch {
	case errors.Is(err, commands.ErrNoReadyOrders), errors.Is(err, commands.ErrNoDriversAvailable):
		j.observer.ObserveJob(driverAssignmentJobName, OutcomeIdle)
	case err != nil:
		j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
		j.observer.ObserveJob(driverAssignmentJobName, OutcomeError)
	default:
		j.logger.InfoContext(ctx, "Assigned drivers to ready orders", "assigned", assigned)
		j.observer.ObserveJob(driverAssignmentJobName, OutcomeOK)
	}
}

// Start begins the driver assignment job to run every second.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every second)")
	return nil
}

// Stop stops the driver assignment job and waits for a running pass to finish.
func (j *DriverAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
