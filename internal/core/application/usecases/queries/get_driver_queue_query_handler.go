package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetDriverQueueQueryHandler returns the orders a driver currently sees, oldest
// first.
type GetDriverQueueQueryHandler struct {
	history driverHistory
}

func NewGetDriverQueueQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	dashboard services.Dashboard,
) GetDriverQueueQueryHandler {
	return GetDriverQueueQueryHandler{history: driverHistory{orders: orders, drivers: drivers, dashboard: dashboard}}
}

func (h GetDriverQueueQueryHandler) Handle(ctx context.Context, query DriverQuery) ([]*order.Order, error) {
	orders, err := h.history.load(ctx, query)
	if err != nil {
		return nil, err
	}
	return h.history.dashboard.DriverQueue(orders, query.DriverID()), nil
}
