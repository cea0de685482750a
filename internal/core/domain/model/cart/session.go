package cart

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSessionIsNotConstructed is returned when a Session was not built by NewSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is a customer's shopping session. It owns exactly one cart.
type Session struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	customerID kernel.UUID
	cart       Cart
	touchedAt  time.Time

	guard guard.ConstructorGuard
}

// NewSession starts a session with an empty cart.
func NewSession(id, customerID kernel.UUID, now time.Time) (Session, error) {
	return RestoreSession(id, customerID, Empty(), now)
}

// RestoreSession rebuilds a session from stored state.
func RestoreSession(id, customerID kernel.UUID, cart Cart, touchedAt time.Time) (Session, error) {
	s := Session{cart: cart, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		customerIDRequired(customerID),
		touchedAtRequired(touchedAt),
	); err != nil {
		return Session{}, err
	}

	s.id = id
	s.customerID = customerID
	s.touchedAt = touchedAt
	return s, nil
}

// Validate ensures the session was built by a constructor.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) ID() kernel.UUID {
	return s.id
}

func (s Session) CustomerID() kernel.UUID {
	return s.customerID
}

// Snapshot returns the current cart.
func (s Session) Snapshot() Cart {
	return s.cart
}

func (s Session) TouchedAt() time.Time {
	return s.touchedAt
}

// IsExpired reports whether the session has been idle for longer than ttl.
func (s Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.touchedAt) > ttl
}

// Add returns the session with line added to its cart.
func (s Session) Add(line Line, now time.Time) Session {
	s.cart = AddItem(s.cart, line)
	s.touchedAt = now
	return s
}

// Remove returns the session with productID removed from its cart.
func (s Session) Remove(productID string, now time.Time) Session {
	s.cart = RemoveItem(s.cart, productID)
	s.touchedAt = now
	return s
}

// Clear returns the session with an empty cart.
func (s Session) Clear(now time.Time) Session {
	s.cart = Clear(s.cart)
	s.touchedAt = now
	return s
}

func customerIDRequired(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	return nil
}

func touchedAtRequired(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("touchedAt")
	}
	return nil
}
