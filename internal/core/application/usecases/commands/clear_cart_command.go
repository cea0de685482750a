package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the customer's cart but keeps the session.
type ClearCartCommand struct {
	sessionRef

	guard guard.ConstructorGuard
}

func NewClearCartCommand(sessionID, customerID kernel.UUID) (ClearCartCommand, error) {
	ref, err := newSessionRef(sessionID, customerID)
	if err != nil {
		return ClearCartCommand{}, err
	}

	return ClearCartCommand{sessionRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
