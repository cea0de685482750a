package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const cartSessionSweepJobName = "cart_session_sweep"

// ExpireCartSessionsHandler is the use case driven by CartSessionSweepJob.
type ExpireCartSessionsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireCartSessionsCommand) (int64, error)
}

// CartSessionSweepJob discards cart sessions nobody touched within the TTL.
type CartSessionSweepJob struct {
	handler  ExpireCartSessionsHandler
	cmd      commands.ExpireCartSessionsCommand
	observer JobObserver
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartSessionSweepJob validates ttl and creates the sweep job.
func NewCartSessionSweepJob(
	handler ExpireCartSessionsHandler,
	ttl time.Duration,
	observer JobObserver,
	logger *slog.Logger,
) (*CartSessionSweepJob, error) {
	cmd, err := commands.NewExpireCartSessionsCommand(ttl)
	if err != nil {
		return nil, err
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &CartSessionSweepJob{
		handler:  handler,
		cmd:      cmd,
		observer: observer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_session_sweep_job"),
	}, nil
}

// Run performs one sweep.
func (j *CartSessionSweepJob) Run(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, j.cmd)
	switch {
	case err != nil:
		j.logger.ErrorContext(ctx, "Cart session sweep failed", "error", err)
		j.observer.ObserveJob(cartSessionSweepJobName, OutcomeError)
	case removed == 0:
		j.observer.ObserveJob(cartSessionSweepJobName, OutcomeIdle)
	default:
		j.logger.InfoContext(ctx, "Expired idle cart sessions", "removed", removed, "ttl", j.cmd.TTL().String())
		j.observer.ObserveJob(cartSessionSweepJobName, OutcomeOK)
	}
}

// Start begins the sweep at the top of every minute.
func (j *CartSessionSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart session sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job and waits for a running sweep to finish.
func (j *CartSessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart session sweep job stopped")
}
