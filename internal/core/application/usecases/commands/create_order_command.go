package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a customer placing an order directly from a list
// of items, without going through a cart session.
//
// Example:
//
//	item, _ := order.NewItem("p-1", "Burger", price, 2)
//	dest, _ := order.NewDelivery("1 Main St", order.PaymentCard)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, []order.Item{item}, dest)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []order.Item
	delivery   order.Delivery

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and requires at least one item.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []order.Item,
	delivery order.Delivery,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
