package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"
)

// CheckoutCartCommandHandler creates an order from the cart lines and discards
// the session in the same transaction. Nothing changes if any step fails.
//
// Example:
//
//	handler := NewCheckoutCartCommandHandler(uowFactory, clk)
//	cmd, _ := NewCheckoutCartCommand(sessionID, customerID, kernel.NewUUID(), delivery)
//	created, err := handler.Handle(ctx, cmd)
type CheckoutCartCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewCheckoutCartCommandHandler(uowFactory UoWFactory, clk clock.Clock) CheckoutCartCommandHandler {
	return CheckoutCartCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h CheckoutCartCommandHandler) Handle(ctx context.Context, cmd CheckoutCartCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartSessionRepository()
	session, err := loadOwnedSession(ctx, cartRepo, cmd.sessionRef)
	if err != nil {
		return nil, err
	}

	snapshot := session.Snapshot()
	if snapshot.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("cart items")
	}

	items := make([]order.Item, 0, snapshot.Len())
	for _, line := range snapshot.Lines() {
		item, err := order.NewItem(line.ProductID(), line.Name(), line.UnitPrice(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items, cmd.Delivery(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = cartRepo.Delete(ctx, cmd.SessionID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
