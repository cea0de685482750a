package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery returns the snapshot of a customer's cart.
type GetCartQuery struct {
	sessionID  kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(sessionID, customerID kernel.UUID) (GetCartQuery, error) {
	if err := errors.Join(sessionID.Validate(), customerID.Validate()); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{sessionID: sessionID, customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

type GetCartQueryHandler struct {
	sessions ports.CartSessionRepository
}

func NewGetCartQueryHandler(sessions ports.CartSessionRepository) GetCartQueryHandler {
	return GetCartQueryHandler{sessions: sessions}
}

// Handle returns an empty cart for a session that was never started.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (cart.Cart, error) {
	if err := query.Validate(); err != nil {
		return cart.Cart{}, err
	}

	session, err := h.sessions.Get(ctx, query.sessionID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.Empty(), nil
	}
	if err != nil {
		return cart.Cart{}, err
	}

	if !session.CustomerID().IsEqual(query.customerID) {
		return cart.Cart{}, errs.NewActorIsUnauthorizedError("customer", "read another customer's cart")
	}

	return session.Snapshot(), nil
}
