package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a newly registered driver. Email addresses are unique.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll returns every driver in registration order.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
