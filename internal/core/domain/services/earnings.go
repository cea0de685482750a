package services

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// DefaultEarningsPerOrder is the flat amount, in minor units, a driver earns for
// each delivered order.
const DefaultEarningsPerOrder int64 = 100

// weekLength is the trailing window used for weekly earnings.
const weekLength = 7

// EarningsWindow is a derived summary of delivered orders created within
// [WindowStart, WindowEnd]. It is recomputed on every request.
type EarningsWindow struct {
	WindowStart    time.Time
	WindowEnd      time.Time
	DeliveredCount int
	TotalEarnings  kernel.Money
}

// DriverEarnings is the earnings summary shown on a driver's dashboard.
type DriverEarnings struct {
	TotalOrders    int
	TodaysOrders   int
	TodayEarnings  kernel.Money
	WeeklyEarnings kernel.Money
	Today          EarningsWindow
	Week           EarningsWindow
}

// DailyEarnings is one bucket of a per-day series. Date is midnight of the day in
// the calculator's time zone.
type DailyEarnings struct {
	Date           time.Time
	DeliveredCount int
	Earnings       kernel.Money
}

// EarningsCalculator derives driver earnings from order history. A driver earns a
// flat rate per delivered order; the order total plays no part.
type EarningsCalculator struct {
	rate     kernel.Money
	location *time.Location
}

// NewEarningsCalculator returns a calculator paying rate per delivered order and
// evaluating day boundaries in location.
func NewEarningsCalculator(rate kernel.Money, location *time.Location) (EarningsCalculator, error) {
	if err := rate.Validate(); err != nil {
		return EarningsCalculator{}, err
	}
	if location == nil {
		return EarningsCalculator{}, errs.NewValueIsRequiredError("location")
	}
	return EarningsCalculator{rate: rate, location: location}, nil
}

// Rate returns the amount earned per delivered order.
func (c EarningsCalculator) Rate() kernel.Money {
	return c.rate
}

// Location returns the time zone used for day boundaries.
func (c EarningsCalculator) Location() *time.Location {
	return c.location
}

// ComputeEarnings summarises the orders assigned to driverID as of now.
//
//   - TotalOrders counts every order of the driver regardless of status
//   - TodaysOrders counts orders created on now's calendar day regardless of status
//   - TodayEarnings pays for delivered orders created since the start of today
//   - WeeklyEarnings pays for delivered orders created within the last 7 days
//
// Orders of other drivers and unassigned orders are ignored.
func (c EarningsCalculator) ComputeEarnings(orders []*order.Order, driverID kernel.UUID, now time.Time) DriverEarnings {
	now = now.In(c.location)
	today := startOfDay(now)
	weekStart := now.AddDate(0, 0, -weekLength)

	var (
		total, todays                 int
		deliveredToday, deliveredWeek int
	)
	for _, o := range orders {
		if !o.IsAssignedTo(driverID) {
			continue
		}
		total++

		createdAt := o.CreatedAt().In(c.location)
		if sameDay(createdAt, now) {
			todays++
		}
		if o.Status() != order.Delivered {
			continue
		}
		if !createdAt.Before(today) {
			deliveredToday++
		}
		if !createdAt.Before(weekStart) {
			deliveredWeek++
		}
	}

	todayWindow := c.window(today, now, deliveredToday)
	weekWindow := c.window(weekStart, now, deliveredWeek)

	return DriverEarnings{
		TotalOrders:    total,
		TodaysOrders:   todays,
		TodayEarnings:  todayWindow.TotalEarnings,
		WeeklyEarnings: weekWindow.TotalEarnings,
		Today:          todayWindow,
		Week:           weekWindow,
	}
}

// ComputeDailySeries buckets delivered orders by the calendar day they were
// created on. It returns one bucket per day for the days ending today, oldest
// first. A non-positive days yields an empty series.
func (c EarningsCalculator) ComputeDailySeries(orders []*order.Order, days int, now time.Time) []DailyEarnings {
	if days <= 0 {
		return []DailyEarnings{}
	}

	today := startOfDay(now.In(c.location))
	series := make([]DailyEarnings, days)
	for i := range series {
		series[i] = DailyEarnings{
			Date:     today.AddDate(0, 0, i-(days-1)),
			Earnings: kernel.Zero(),
		}
	}

	for _, o := range orders {
		if o.Status() != order.Delivered {
			continue
		}
		day := startOfDay(o.CreatedAt().In(c.location))
		for i := range series {
			if series[i].Date.Equal(day) {
				series[i].DeliveredCount++
				break
			}
		}
	}

	for i := range series {
		series[i].Earnings = c.pay(series[i].DeliveredCount)
	}

	return series
}

func (c EarningsCalculator) window(start, end time.Time, delivered int) EarningsWindow {
	return EarningsWindow{
		WindowStart:    start,
		WindowEnd:      end,
		DeliveredCount: delivered,
		TotalEarnings:  c.pay(delivered),
	}
}

func (c EarningsCalculator) pay(delivered int) kernel.Money {
	earnings, err := c.rate.Times(delivered)
	if err != nil {
		return kernel.Zero()
	}
	return earnings
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
