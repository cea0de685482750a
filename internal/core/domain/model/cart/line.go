package cart

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not built by NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a product in the cart.
type Line struct { //nolint:recvcheck //using for validation
	productID string
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine builds a line with quantity 1.
func NewLine(productID, name string, unitPrice kernel.Money) (Line, error) {
	line := Line{quantity: 1, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// RestoreLine rebuilds a line with an explicit quantity.
func RestoreLine(productID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	line, err := NewLine(productID, name, unitPrice)
	if err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	line.quantity = quantity
	return line, nil
}

// Validate ensures the line was built by a constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unitPrice × quantity, or an out-of-range error once repeated
// adds push it past int64.
func (l Line) Subtotal() (kernel.Money, error) {
	return l.unitPrice.Times(l.quantity)
}

func (l Line) increment() Line {
	l.quantity++
	return l
}

func (l *Line) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
