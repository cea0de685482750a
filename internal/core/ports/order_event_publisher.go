package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
