package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks to move an order to a new status on behalf of
// an actor. Every status change in the system goes through this command.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     order.Actor
	requested order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand validates the order ID and the actor and
// requires a requested status token.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	actor order.Actor,
	requested string,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setRequested(requested),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c TransitionOrderStatusCommand) Requested() order.Status {
	return c.requested
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

// setRequested keeps any non-blank token. Tokens outside the lifecycle are not
// successors of any status, so Order.Transition rejects them as invalid
// transitions.
func (c *TransitionOrderStatusCommand) setRequested(requested string) error {
	if strings.TrimSpace(requested) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	c.requested = order.Status(requested)
	return nil
}
