package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"
)

// MaxSeriesDays bounds how far back a daily series may reach.
const MaxSeriesDays = 366

// GetDailySeriesQuery asks for a driver's delivered orders per day over the last
// Days days, today included.
type GetDailySeriesQuery struct {
	DriverQuery
	days int
}

func NewGetDailySeriesQuery(driverID kernel.UUID, days int) (GetDailySeriesQuery, error) {
	base, err := NewDriverQuery(driverID)
	if err != nil {
		return GetDailySeriesQuery{}, err
	}
	if days < 1 || days > MaxSeriesDays {
		return GetDailySeriesQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxSeriesDays)
	}
	return GetDailySeriesQuery{DriverQuery: base, days: days}, nil
}

func (q GetDailySeriesQuery) Days() int {
	return q.days
}

type GetDailySeriesQueryHandler struct {
	history driverHistory
}

func NewGetDailySeriesQueryHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	dashboard services.Dashboard,
	clk clock.Clock,
) GetDailySeriesQueryHandler {
	return GetDailySeriesQueryHandler{
		history: driverHistory{orders: orders, drivers: drivers, dashboard: dashboard, clock: clk},
	}
}

// Handle returns one bucket per day, oldest first.
func (h GetDailySeriesQueryHandler) Handle(ctx context.Context, query GetDailySeriesQuery) ([]services.DailyEarnings, error) {
	orders, err := h.history.load(ctx, query.DriverQuery)
	if err != nil {
		return nil, err
	}
	return h.history.dashboard.DailySeries(orders, query.DriverID(), query.Days(), h.history.clock.Now()), nil
}
