// Package cart provides the shopping cart reducer and the customer session that
// owns a cart until checkout.
//
// The package includes:
//   - Line: one product in the cart with its unit price and quantity
//   - Cart: an immutable set of lines keyed by product ID
//   - Session: a customer's cart together with the last time it was touched
//
// Key business rules:
//   - A cart never holds two lines for the same product
//   - Adding a product that is already present increments its quantity by one and
//     ignores the incoming name and price
//   - Removing a product drops the whole line regardless of its quantity
//   - All operations return a new cart and leave their input unchanged
package cart
