package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not built by NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line, frozen at order creation.
type Item struct { //nolint:recvcheck //using for validation
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem validates and builds an order line. Product ID and name are required,
// the unit price must be a constructed Money and quantity must be at least 1.
// The subtotal must fit in int64.
func NewItem(productID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	if _, err := item.unitPrice.Times(item.quantity); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unitPrice × quantity. NewItem has already checked that it
// fits, so only a zero-value Item yields Zero here.
func (i Item) Subtotal() kernel.Money {
	subtotal, err := i.unitPrice.Times(i.quantity)
	if err != nil {
		return kernel.Zero()
	}
	return subtotal
}

func (i *Item) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
