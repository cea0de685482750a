package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is returned when assigning a driver to an order that
	// already has a different one.
	ErrDriverAlreadyAssigned = errors.New("driver is already assigned")
)

// Order is the aggregate root of the fulfillment lifecycle. It tracks a customer's
// order from creation through pickup by a driver to delivery.
//
// Order follows these invariants:
//   - id, customerID and createdAt are set once and never change
//   - items are non-empty and every quantity is at least 1
//   - total is recorded at creation and never recomputed
//   - status only moves forward along the transition graph
//
// Mutations never change the receiver. Transition and AssignDriver return a new
// *Order so the caller can persist it with a conditional write against the status
// it originally read.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID
	items      []Item
	total      kernel.Money
	status     Status
	delivery   Delivery
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an order in Created status with no driver. The total is
// computed from the items here and stored.
//
//	item, _ := order.NewItem("p-1", "Burger", price, 2)
//	dest, _ := order.NewDelivery("1 Main St", order.PaymentCashOnDelivery)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item}, dest, clock.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	delivery Delivery,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setDelivery(delivery),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	total := kernel.Zero()
	for _, item := range order.items {
		var err error
		if total, err = total.Add(item.Subtotal()); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("total", err)
		}
	}
	order.total = total

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored total is kept
// as is; it is never recomputed from the items.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	delivery Delivery,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDriverID(driverID),
		order.setItems(items),
		order.setTotal(total),
		order.setStatus(status),
		order.setDelivery(delivery),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the assigned driver's ID, or nil if no driver is assigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the amount recorded at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Delivery returns the destination and payment method.
func (o *Order) Delivery() Delivery {
	return o.delivery
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsAssignedTo reports whether driverID is the order's assigned driver.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// Transition moves the order to the requested status on behalf of actor and
// returns the resulting order. The receiver is left untouched.
//
// Legality is checked first, so an illegal request fails with
// errs.ErrTransitionIsInvalid regardless of who asked. A legal request the actor
// may not perform fails with errs.ErrActorIsUnauthorized.
//
// Authorization rules:
//   - created -> ready: restaurant or system
//   - ready -> picked, picked -> en_route, en_route -> delivered: the assigned driver
//   - any -> canceled: restaurant or system; the assigned driver once the order is
//     ready; the owning customer while the order is still created
func (o *Order) Transition(actor Actor, requested Status) (*Order, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := o.status.ValidateTransition(requested); err != nil {
		return nil, err
	}
	if !o.mayTransition(actor, requested) {
		return nil, errs.NewActorIsUnauthorizedError(
			actor.Role().String(), "move order from "+o.status.String()+" to "+requested.String())
	}

	next := o.clone()
	next.status = requested
	return next, nil
}

// AssignDriver returns a copy of the order with driverID assigned. Only a
// restaurant or the system may assign, and only while the order is created or
// ready. Re-assigning the same driver is a no-op; a different driver fails with
// ErrDriverAlreadyAssigned.
func (o *Order) AssignDriver(actor Actor, driverID kernel.UUID) (*Order, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if actor.Role() != RoleRestaurant && actor.Role() != RoleSystem {
		return nil, errs.NewActorIsUnauthorizedError(actor.Role().String(), "assign a driver")
	}
	if err := o.status.ValidateAssign(); err != nil {
		return nil, err
	}
	if o.driverID != nil {
		if o.driverID.IsEqual(driverID) {
			return o.clone(), nil
		}
		return nil, ErrDriverAlreadyAssigned
	}

	next := o.clone()
	next.driverID = &driverID
	return next, nil
}

func (o *Order) mayTransition(actor Actor, to Status) bool {
	role := actor.Role()
	if role == RoleSystem || role == RoleRestaurant {
		// Drivers own the pickup and delivery legs.
		return to == Ready || to == Canceled
	}

	isDriver := actor.Is(RoleDriver, o.driverID)
	switch to {
	case Picked, EnRoute, Delivered:
		return isDriver
	case Canceled:
		if isDriver {
			return o.status != Created
		}
		return o.status == Created && actor.Is(RoleCustomer, &o.customerID)
	default:
		return false
	}
}

func (o *Order) clone() *Order {
	next := *o
	next.items = o.Items()
	if o.driverID != nil {
		driverID := *o.driverID
		next.driverID = &driverID
	}
	return &next
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	id := *driverID
	o.driverID = &id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if delivery.address == "" {
		return errs.NewValueIsRequiredError("delivery")
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
