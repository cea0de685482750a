package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
)

// GetDriverDashboardQueryHandler builds every dashboard view from a single read
// of the driver's history, so the views agree with each other.
//
// Example:
//
//	handler := NewGetDriverDashboardQueryHandler(orderRepo, driverRepo, dashboard, clk)
//	query, _ := NewDriverQuery(driverID)
//	view, err := handler.Handle(ctx, query)
//	fmt.Println(view.Earnings.TodayEarnings)
type GetDriverDashboardQueryHandler struct {
	history driverHistory
}

func NewGetDriverDashboardQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	dashboard services.Dashboard,
	clk clock.Clock,
) GetDriverDashboardQueryHandler {
	return GetDriverDashboardQueryHandler{
		history: driverHistory{orders: orders, drivers: drivers, dashboard: dashboard, clock: clk},
	}
}

func (h GetDriverDashboardQueryHandler) Handle(ctx context.Context, query DriverQuery) (services.DriverDashboard, error) {
	orders, err := h.history.load(ctx, query)
	if err != nil {
		return services.DriverDashboard{}, err
	}
	return h.history.dashboard.Project(orders, query.DriverID(), h.history.clock.Now()), nil
}
