package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrNoReadyOrders      = errors.New("no ready orders waiting for a driver")
	ErrNoDriversAvailable = errors.New("no drivers available")
)

// AssignReadyOrdersCommand has no parameters; it exists so the handler follows
// the same calling convention as the other commands.
type AssignReadyOrdersCommand struct{}

func NewAssignReadyOrdersCommand() AssignReadyOrdersCommand {
	return AssignReadyOrdersCommand{}
}

// AssignReadyOrdersCommandHandler hands every ready, unassigned order to the
// driver with the fewest active orders. Load is recounted after each assignment
// so one batch spreads across drivers. Orders that changed or vanished
// underneath the batch are skipped; changed ones are picked up by the next run.
//
// Example:
//
//	handler := NewAssignReadyOrdersCommandHandler(uowFactory, services.NewDriverDispatcher())
//	assigned, err := handler.Handle(ctx, NewAssignReadyOrdersCommand())
//	if errors.Is(err, ErrNoReadyOrders) {
//	    return nil
//	}
type AssignReadyOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DriverDispatcher
}

func NewAssignReadyOrdersCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DriverDispatcher,
) AssignReadyOrdersCommandHandler {
	return AssignReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns how many orders were assigned.
func (h AssignReadyOrdersCommandHandler) Handle(ctx context.Context, _ AssignReadyOrdersCommand) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.ListReadyUnassigned(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, ErrNoReadyOrders
	}

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(drivers) == 0 {
		return 0, ErrNoDriversAvailable
	}

	active, err := orderRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	assignedCount := 0
	for _, o := range pending {
		assigned, d, err := h.dispatcher.Dispatch(o, drivers, active)
		if err != nil {
			return assignedCount, err
		}

		err = orderRepo.AssignDriver(ctx, o.ID(), o.Status(), d.ID())
		if errors.Is(err, errs.ErrConcurrencyConflict) || errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return assignedCount, err
		}

		active = append(active, assigned)
		assignedCount++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return assignedCount, nil
}
