// Package order provides the Order aggregate and the delivery state machine that
// governs its status.
//
// The package includes:
//   - Order: the aggregate root holding items, the recorded total and the status
//   - Status: the lifecycle graph created -> ready -> picked -> en_route -> delivered,
//     with canceled reachable from every non-terminal status
//   - Item: an immutable order line captured at creation time
//   - Actor: the identity and role requesting a change
//   - Delivery: destination address and payment method
//
// Key business rules:
//   - Orders have at least one item and their total is recorded once at creation
//   - Status only moves forward; delivered and canceled are terminal
//   - Only the restaurant or the system may mark an order ready
//   - Only the assigned driver may pick up, depart with and deliver an order
//   - Transition never mutates the receiver; it returns the next order record
package order
