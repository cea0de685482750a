// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Driver and order listings read the database directly; dashboard views are
// projected from order history by the domain services and never mutate it.
package queries
