package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand drops a product from the cart whatever its quantity.
type RemoveCartItemCommand struct {
	sessionRef
	productID string

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(sessionID, customerID kernel.UUID, productID string) (RemoveCartItemCommand, error) {
	ref, err := newSessionRef(sessionID, customerID)
	if strings.TrimSpace(productID) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("productId"))
	}
	if err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{sessionRef: ref, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) ProductID() string {
	return c.productID
}
