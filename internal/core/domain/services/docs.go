// Package services provides domain services that derive views and decisions from
// collections of orders and drivers. They are pure: inputs are never mutated and
// no global state is read.
//
// The package includes:
//   - EarningsCalculator: per-driver earnings over the current day and the trailing week,
//     and a per-day delivered series
//   - Dashboard: the driver queue, the status distribution and the combined driver view
//   - DriverDispatcher: picks the least loaded driver for an unassigned order
//
// Every calendar-day boundary is evaluated in the single time zone the
// EarningsCalculator is configured with.
package services
