package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChanged records one committed status transition.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	From       Status
	To         Status
	ActorRole  Role
	OccurredAt time.Time
}

// NewStatusChanged describes the move from prev to next made by actor.
func NewStatusChanged(prev, next *Order, actor Actor, occurredAt time.Time) StatusChanged {
	return StatusChanged{
		OrderID:    next.ID(),
		CustomerID: next.CustomerID(),
		DriverID:   next.DriverID(),
		From:       prev.Status(),
		To:         next.Status(),
		ActorRole:  actor.Role(),
		OccurredAt: occurredAt,
	}
}
