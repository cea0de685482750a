package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver for a restaurant. Contact details are
// validated by the driver aggregate.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.UUID
	name         string
	email        string
	phone        string
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(
	driverID kernel.UUID,
	name, email, phone string,
	restaurantID kernel.UUID,
) (CreateDriverCommand, error) {
	if err := errors.Join(driverID.Validate(), restaurantID.Validate()); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		driverID:     driverID,
		name:         name,
		email:        email,
		phone:        phone,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Email() string {
	return c.email
}

func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c CreateDriverCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}
