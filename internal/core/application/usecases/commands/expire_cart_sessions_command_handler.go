package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"
)

// ExpireCartSessionsCommand discards sessions idle for longer than TTL.
type ExpireCartSessionsCommand struct {
	ttl time.Duration
}

func NewExpireCartSessionsCommand(ttl time.Duration) (ExpireCartSessionsCommand, error) {
	if ttl <= 0 {
		return ExpireCartSessionsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not a positive duration", ttl))
	}
	return ExpireCartSessionsCommand{ttl: ttl}, nil
}

func (c ExpireCartSessionsCommand) TTL() time.Duration {
	return c.ttl
}

type ExpireCartSessionsCommandHandler struct {
	uowFactory CartUoWFactory
	clock      clock.Clock
}

func NewExpireCartSessionsCommandHandler(uowFactory CartUoWFactory, clk clock.Clock) ExpireCartSessionsCommandHandler {
	return ExpireCartSessionsCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Handle returns the number of sessions removed.
func (h ExpireCartSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireCartSessionsCommand) (int64, error) {
	if cmd.TTL() <= 0 {
		return 0, errs.NewValueIsRequiredError("ttl")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartSessionRepository().DeleteIdleSince(ctx, h.clock.Now().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
