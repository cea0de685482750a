package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutCartCommandIsNotConstructed = errors.New(
	"CheckoutCartCommand must be created via NewCheckoutCartCommand constructor",
)

// CheckoutCartCommand turns the customer's cart into an order.
type CheckoutCartCommand struct {
	sessionRef
	orderID  kernel.UUID
	delivery order.Delivery

	guard guard.ConstructorGuard
}

func NewCheckoutCartCommand(
	sessionID, customerID, orderID kernel.UUID,
	delivery order.Delivery,
) (CheckoutCartCommand, error) {
	ref, err := newSessionRef(sessionID, customerID)
	if err = errors.Join(err, orderID.Validate()); err != nil {
		return CheckoutCartCommand{}, err
	}

	return CheckoutCartCommand{
		sessionRef: ref,
		orderID:    orderID,
		delivery:   delivery,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCartCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCartCommandIsNotConstructed)
}

func (c CheckoutCartCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CheckoutCartCommand) Delivery() order.Delivery {
	return c.delivery
}
