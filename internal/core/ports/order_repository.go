// Package ports defines the contracts between the fulfillment core and its
// infrastructure: persistence, the cart session store and event publishing.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository is the read/write boundary to persisted orders.
//
// Writes are optimistic. CompareAndSwapStatus and AssignDriver only apply when
// the stored status still equals expected; otherwise they fail with
// errs.ErrConcurrencyConflict, or errs.ErrObjectNotFound when the order is missing.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByDriver returns every order assigned to driverID, oldest first.
	ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, oldest first.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// ListReadyUnassigned returns ready orders without a driver, oldest first.
	ListReadyUnassigned(ctx context.Context) ([]*order.Order, error)

	// ListActive returns assigned orders that are not delivered or canceled.
	ListActive(ctx context.Context) ([]*order.Order, error)

	// CompareAndSwapStatus sets the status of id to next if it is still expected.
	CompareAndSwapStatus(ctx context.Context, id kernel.UUID, expected, next order.Status) error

	// AssignDriver sets the driver of id if the order is unassigned, or already
	// assigned to driverID, and its status is still expected.
	AssignDriver(ctx context.Context, id kernel.UUID, expected order.Status, driverID kernel.UUID) error
}
