package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/clock"
)

// AddCartItemCommandHandler merges a line into the session's cart, starting the
// session on first use. Adding a product already in the cart increments its
// quantity. The session row stays locked until commit.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      clock.Clock
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, clk clock.Clock) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (cart.Session, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Session{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cart.Session{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	fresh, err := cart.NewSession(cmd.SessionID(), cmd.CustomerID(), now)
	if err != nil {
		return cart.Session{}, err
	}

	repo := uow.CartSessionRepository()
	stored, err := repo.Open(ctx, fresh)
	if err != nil {
		return cart.Session{}, err
	}

	session, err := ownedBy(stored, cmd.sessionRef)
	if err != nil {
		return cart.Session{}, err
	}

	session = session.Add(cmd.Line(), now)
	if _, err = session.Snapshot().Total(); err != nil {
		return cart.Session{}, err
	}

	if err = repo.Save(ctx, session); err != nil {
		return cart.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return cart.Session{}, err
	}

	return session, nil
}
