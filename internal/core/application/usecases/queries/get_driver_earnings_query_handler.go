package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
)

// GetDriverEarningsQueryHandler computes today's and this week's earnings as of
// the clock's current time.
type GetDriverEarningsQueryHandler struct {
	history driverHistory
}

func NewGetDriverEarningsQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	dashboard services.Dashboard,
	clk clock.Clock,
) GetDriverEarningsQueryHandler {
	return GetDriverEarningsQueryHandler{
		history: driverHistory{orders: orders, drivers: drivers, dashboard: dashboard, clock: clk},
	}
}

func (h GetDriverEarningsQueryHandler) Handle(ctx context.Context, query DriverQuery) (services.DriverEarnings, error) {
	orders, err := h.history.load(ctx, query)
	if err != nil {
		return services.DriverEarnings{}, err
	}
	return h.history.dashboard.Earnings(orders, query.DriverID(), h.history.clock.Now()), nil
}
