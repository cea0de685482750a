package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not built by NewActor or SystemActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or SystemActor")

// Role identifies what kind of party is requesting a change.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleDriver     Role = "driver"
	RoleRestaurant Role = "restaurant"
	RoleSystem     Role = "system"
)

// RoleFromString parses a role token.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	switch role {
	case RoleCustomer, RoleDriver, RoleRestaurant, RoleSystem:
		return role, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the identity requesting a transition. Customers, drivers and
// restaurants carry an ID; the system actor does not.
type Actor struct {
	id    *kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor builds an actor for a customer, driver or restaurant. Use SystemActor
// for automated callers.
func NewActor(role Role, id kernel.UUID) (Actor, error) {
	if _, err := RoleFromString(string(role)); err != nil {
		return Actor{}, err
	}
	if role == RoleSystem {
		return SystemActor(), nil
	}
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}
	return Actor{id: &id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// SystemActor returns the actor used by background jobs and internal callers.
func SystemActor() Actor {
	return Actor{role: RoleSystem, guard: guard.NewConstructorGuard()}
}

// Validate ensures the actor was built by a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's identifier, or nil for the system actor.
func (a Actor) ID() *kernel.UUID {
	return a.id
}

// Is reports whether the actor has the given role and identifier.
func (a Actor) Is(role Role, id *kernel.UUID) bool {
	return a.role == role && a.id != nil && id != nil && a.id.IsEqual(*id)
}
