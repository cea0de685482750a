package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/pkg/clock"
)

type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	clock      clock.Clock
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory, clk clock.Clock) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) (cart.Session, error) {
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

	session = session.Clear(h.clock.Now())
	if err = repo.Save(ctx, session); err != nil {
		return cart.Session{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return cart.Session{}, err
	}

	return session, nil
}
