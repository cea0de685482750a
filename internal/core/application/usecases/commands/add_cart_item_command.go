package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts one unit of a product into the customer's cart. The
// session is started on first use.
type AddCartItemCommand struct {
	sessionRef
	line cart.Line

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(sessionID, customerID kernel.UUID, line cart.Line) (AddCartItemCommand, error) {
	ref, err := newSessionRef(sessionID, customerID)
	if err = errors.Join(err, line.Validate()); err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{sessionRef: ref, line: line, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Line() cart.Line {
	return c.line
}
