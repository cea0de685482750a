package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no driver is available for dispatch.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service that assigns an unassigned order to the
// driver currently carrying the fewest active orders.
//
// Business rules:
//   - Orders must be valid and still assignable (created or ready)
//   - Active orders are assigned orders that are not yet delivered or canceled
//   - Ties go to the driver listed first
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	assigned, d, err := dispatcher.Dispatch(o, drivers, activeOrders)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    return nil
//	}
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch selects the least loaded driver and returns the order with that driver
// assigned. active is the set of orders used to measure each driver's load.
func (d DriverDispatcher) Dispatch(
	o *order.Order,
	drivers []*driver.Driver,
	active []*order.Order,
) (*order.Order, *driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, nil, err
	}

	best, err := d.findLeastLoaded(drivers, active)
	if err != nil {
		return nil, nil, err
	}

	assigned, err := o.AssignDriver(order.SystemActor(), best.ID())
	if err != nil {
		return nil, nil, err
	}

	return assigned, best, nil
}

func (d DriverDispatcher) findLeastLoaded(drivers []*driver.Driver, active []*order.Order) (*driver.Driver, error) {
	load := make(map[kernel.UUID]int, len(drivers))
	for _, o := range active {
		if o.DriverID() != nil && !o.Status().IsTerminal() {
			load[*o.DriverID()]++
		}
	}

	var (
		best     *driver.Driver
		bestLoad int
	)
	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if n := load[candidate.ID()]; best == nil || n < bestLoad {
			best = candidate
			bestLoad = n
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}

	return best, nil
}
