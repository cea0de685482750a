package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/clock"
)

// RemoveCartItemCommandHandler removes a product from an existing session.
// Removing a product that is not in the cart leaves the cart unchanged.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      clock.Clock
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, clk clock.Clock) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (cart.Session, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Session{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cart.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartSessionRepository()
	session, err := loadOwnedSession(ctx, repo, cmd.sessionRef)
	if err != nil {
		return cart.Session{}, err
	}

	session = session.Remove(cmd.ProductID(), h.clock.Now())
	if err = repo.Save(ctx, session); err != nil {
		return cart.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return cart.Session{}, err
	}

	return session, nil
}
