package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

type GetStatusDistributionQueryHandler struct {
	history driverHistory
}

func NewGetStatusDistributionQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	dashboard services.Dashboard,
) GetStatusDistributionQueryHandler {
	return GetStatusDistributionQueryHandler{
		history: driverHistory{orders: orders, drivers: drivers, dashboard: dashboard},
	}
}

// Handle counts the driver's orders per driver-visible status.
func (h GetStatusDistributionQueryHandler) Handle(ctx context.Context, query DriverQuery) ([]services.StatusCount, error) {
	orders, err := h.history.load(ctx, query)
	if err != nil {
		return nil, err
	}
	return h.history.dashboard.StatusDistribution(orders, query.DriverID()), nil
}
