package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// SeriesDays is the length of the earnings series on the driver dashboard.
const SeriesDays = 7

// StatusCount is the number of a driver's orders in one status.
type StatusCount struct {
	Status order.Status
	Count  int
}

// DriverDashboard is the combined read-only view for one driver.
type DriverDashboard struct {
	Queue        []*order.Order
	Earnings     DriverEarnings
	Distribution []StatusCount
	Series       []DailyEarnings
}

// Dashboard projects driver-facing views from order history.
type Dashboard struct {
	calculator EarningsCalculator
}

// NewDashboard returns a projection that uses calculator for earnings.
func NewDashboard(calculator EarningsCalculator) Dashboard {
	return Dashboard{calculator: calculator}
}

// DriverQueue returns the driver's orders in a driver-visible status, oldest
// first. Orders created at the same instant are ordered by ID. The input slice
// is not reordered.
func (d Dashboard) DriverQueue(orders []*order.Order, driverID kernel.UUID) []*order.Order {
	queue := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsAssignedTo(driverID) && o.Status().IsDriverVisible() {
			queue = append(queue, o)
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		a, b := queue[i].CreatedAt(), queue[j].CreatedAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return queue[i].ID().String() < queue[j].ID().String()
	})

	return queue
}

// StatusDistribution counts the driver's orders per driver-visible status. Every
// driver-visible status is present, in lifecycle order, even when its count is 0.
func (d Dashboard) StatusDistribution(orders []*order.Order, driverID kernel.UUID) []StatusCount {
	visible := order.DriverVisible()
	counts := make(map[order.Status]int, len(visible))
	for _, o := range orders {
		if o.IsAssignedTo(driverID) {
			counts[o.Status()]++
		}
	}

	distribution := make([]StatusCount, 0, len(visible))
	for _, s := range visible {
		distribution = append(distribution, StatusCount{Status: s, Count: counts[s]})
	}
	return distribution
}

// DailySeries returns the driver's delivered series for the given number of days.
func (d Dashboard) DailySeries(orders []*order.Order, driverID kernel.UUID, days int, now time.Time) []DailyEarnings {
	return d.calculator.ComputeDailySeries(assignedTo(orders, driverID), days, now)
}

// Earnings returns the driver's earnings summary.
func (d Dashboard) Earnings(orders []*order.Order, driverID kernel.UUID, now time.Time) DriverEarnings {
	return d.calculator.ComputeEarnings(orders, driverID, now)
}

// Project builds the full driver dashboard as of now.
func (d Dashboard) Project(orders []*order.Order, driverID kernel.UUID, now time.Time) DriverDashboard {
	return DriverDashboard{
		Queue:        d.DriverQueue(orders, driverID),
		Earnings:     d.Earnings(orders, driverID, now),
		Distribution: d.StatusDistribution(orders, driverID),
		Series:       d.DailySeries(orders, driverID, SeriesDays, now),
	}
}

func assignedTo(orders []*order.Order, driverID kernel.UUID) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsAssignedTo(driverID) {
			out = append(out, o)
		}
	}
	return out
}
