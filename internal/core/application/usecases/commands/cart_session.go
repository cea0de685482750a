package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// sessionRef identifies a cart session and the customer acting on it.
type sessionRef struct {
	sessionID  kernel.UUID
	customerID kernel.UUID
}

func newSessionRef(sessionID, customerID kernel.UUID) (sessionRef, error) {
	if err := errors.Join(sessionID.Validate(), customerID.Validate()); err != nil {
		return sessionRef{}, err
	}
	return sessionRef{sessionID: sessionID, customerID: customerID}, nil
}

func (r sessionRef) SessionID() kernel.UUID {
	return r.sessionID
}

func (r sessionRef) CustomerID() kernel.UUID {
	return r.customerID
}

// loadOwnedSession locks the session for the rest of the transaction and
// returns it only if it belongs to the customer.
func loadOwnedSession(ctx context.Context, repo ports.CartSessionRepository, ref sessionRef) (cart.Session, error) {
	session, err := repo.GetForUpdate(ctx, ref.sessionID)
	if err != nil {
		return cart.Session{}, err
	}
	return ownedBy(session, ref)
}

func ownedBy(session cart.Session, ref sessionRef) (cart.Session, error) {
	if !session.CustomerID().IsEqual(ref.customerID) {
		return cart.Session{}, errs.NewActorIsUnauthorizedError("customer", "use another customer's cart")
	}
	return session, nil
}
