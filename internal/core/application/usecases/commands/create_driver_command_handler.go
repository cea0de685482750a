package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/pkg/clock"
)

// CreateDriverCommandHandler registers new drivers.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      clock.Clock
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory, clk clock.Clock) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.RestaurantID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
