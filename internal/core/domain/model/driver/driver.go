package driver

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when registering a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when registering a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a delivery driver working for one restaurant.
//
// Example usage:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Alice", "alice@example.com", "+1 555 0100", restaurantID, now)
//	if err != nil {
//	    return err
//	}
type Driver struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	restaurantID kernel.UUID
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewDriver validates and registers a new driver.
func NewDriver(
	id kernel.UUID,
	name, email, phone string,
	restaurantID kernel.UUID,
	createdAt time.Time,
) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setRestaurantID(restaurantID),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage. The same
// validation as NewDriver applies.
func RestoreDriver(
	id kernel.UUID,
	name, email, phone string,
	restaurantID kernel.UUID,
	createdAt time.Time,
) (*Driver, error) {
	return NewDriver(id, name, email, phone, restaurantID, createdAt)
}

// Validate ensures the Driver instance was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Email() string {
	return d.email
}

func (d *Driver) Phone() string {
	return d.phone
}

func (d *Driver) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// IsEqual compares drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Driver) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	d.createdAt = createdAt
	return nil
}
