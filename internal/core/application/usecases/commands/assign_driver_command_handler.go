package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// AssignDriverCommandHandler assigns a registered driver to an order that is
// still created or ready.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd, _ := NewAssignDriverCommand(orderID, driverID, restaurantActor)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrDriverAlreadyAssigned) {
//	    // another driver already took it
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

// Handle verifies the driver exists and stores the assignment conditioned on
// the status read in the same attempt.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return nil, err
	}

	assigned, err := current.AssignDriver(cmd.Actor(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.AssignDriver(ctx, current.ID(), current.Status(), cmd.DriverID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}
