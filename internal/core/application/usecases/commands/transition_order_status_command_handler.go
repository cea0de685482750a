package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"
)

// DefaultTransitionMaxRetries is how many times a transition is re-read and
// retried after losing a concurrent write.
const DefaultTransitionMaxRetries = 3

// TransitionOrderStatusCommandHandler applies status changes with optimistic
// concurrency. Each attempt reads the order, validates the transition and writes
// it conditioned on the status it read. A lost race is retried from a fresh read
// up to maxRetries times, after which errs.ErrConcurrencyConflict is returned.
//
// A StatusChanged event is published after the transaction commits. Publishing
// failures are logged and do not fail the command.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(uowFactory, publisher, clk, 3, logger)
//	cmd, _ := NewTransitionOrderStatusCommand(orderID, driverActor, "picked")
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrTransitionIsInvalid):
//	    // illegal target for the current status
//	case errors.Is(err, errs.ErrActorIsUnauthorized):
//	    // legal target, wrong actor
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      clock.Clock
	maxRetries int
	logger     *slog.Logger
}

// NewTransitionOrderStatusCommandHandler creates the single entry point for order
// status changes. A negative maxRetries is treated as zero.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clk clock.Clock,
	maxRetries int,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
		maxRetries: max(maxRetries, 0),
		logger:     logger.With("component", "transition_order_status"),
	}
}

// Handle moves the order and returns its new state.
func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		previous, next, err := h.attempt(ctx, cmd)
		if errors.Is(err, errs.ErrConcurrencyConflict) && attempt < h.maxRetries {
			h.logger.DebugContext(ctx, "Retrying order transition after conflict",
				"order_id", cmd.OrderID().String(), "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}

		h.publish(ctx, order.NewStatusChanged(previous, next, cmd.Actor(), h.clock.Now()))
		return next, nil
	}
}

func (h TransitionOrderStatusCommandHandler) attempt(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, *order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	next, err := current.Transition(cmd.Actor(), cmd.Requested())
	if err != nil {
		return nil, nil, err
	}

	if err = repo.CompareAndSwapStatus(ctx, current.ID(), current.Status(), next.Status()); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return current, next, nil
}

func (h TransitionOrderStatusCommandHandler) publish(ctx context.Context, event order.StatusChanged) {
	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order status change",
			"order_id", event.OrderID.String(), "to", event.To.String(), "error", err)
	}
}
