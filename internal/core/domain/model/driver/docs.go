// Package driver provides the Driver aggregate: a delivery driver registered by a
// restaurant.
//
// Key business rules:
//   - Drivers have a valid identifier, a name, an email and a phone number
//   - A driver belongs to exactly one restaurant
//   - Registration data is immutable once created
package driver
