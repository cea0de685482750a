// Package kernel provides the value objects shared by every aggregate of the
// fulfillment domain.
//
// The package includes:
//   - UUID: identifier for orders, customers, drivers and restaurants
//   - Money: a non-negative amount in minor currency units (cents)
//
// Both are immutable, carry a constructor guard and are safe for concurrent use.
package kernel
