package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/guard"
)

var ErrDriverQueryIsNotConstructed = errors.New(
	"DriverQuery must be created via NewDriverQuery constructor",
)

// DriverQuery addresses one driver's dashboard views.
type DriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDriverQuery(driverID kernel.UUID) (DriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DriverQuery{}, err
	}
	return DriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q DriverQuery) Validate() error {
	return q.guard.Validate(ErrDriverQueryIsNotConstructed)
}

func (q DriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

// driverHistory loads the orders a driver has been assigned and projects them.
// An unregistered driver is ObjectNotFound rather than an empty history.
type driverHistory struct {
	orders    ports.OrderRepository
	drivers   ports.DriverRepository
	dashboard services.Dashboard
	clock     clock.Clock
}

func (h driverHistory) load(ctx context.Context, q DriverQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if _, err := h.drivers.Get(ctx, q.DriverID()); err != nil {
		return nil, err
	}
	return h.orders.ListByDriver(ctx, q.DriverID())
}
