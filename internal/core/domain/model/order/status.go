package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Its string value is the wire and
// storage token and must not change.
//
//	created ──> ready ──> picked ──> en_route ──> delivered
//	   │          │          │           │
//	   └──────────┴──────────┴───────────┴──> canceled
type Status string

const (
	// Unknown is the zero value and never valid.
	Unknown Status = ""

	// Created is the initial status; the order is not visible to drivers yet.
	Created Status = "created"

	// Ready means the restaurant has prepared the order for pickup.
	Ready Status = "ready"

	// Picked means the assigned driver has collected the order.
	Picked Status = "picked"

	// EnRoute means the driver is travelling to the customer.
	EnRoute Status = "en_route"

	// Delivered is the terminal success status.
	Delivered Status = "delivered"

	// Canceled is the terminal escape status.
	Canceled Status = "canceled"
)

// transitions lists the legal successors of every non-terminal status.
var transitions = map[Status][]Status{
	Created: {Ready, Canceled},
	Ready:   {Picked, Canceled},
	Picked:  {EnRoute, Canceled},
	EnRoute: {Delivered, Canceled},
}

var allowedTransitionSet = buildTransitionSet(transitions)

func buildTransitionSet(graph map[Status][]Status) map[Status]map[Status]struct{} {
	set := make(map[Status]map[Status]struct{}, len(graph))
	for from, tos := range graph {
		next := make(map[Status]struct{}, len(tos))
		for _, to := range tos {
			next[to] = struct{}{}
		}
		set[from] = next
	}
	return set
}

// All returns every valid status in lifecycle order.
func All() []Status {
	return []Status{Created, Ready, Picked, EnRoute, Delivered, Canceled}
}

// DriverVisible returns the statuses shown on driver-facing views, in lifecycle order.
func DriverVisible() []Status {
	return []Status{Ready, Picked, EnRoute, Delivered, Canceled}
}

// StatusFromString parses a wire token. Matching is case-sensitive.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate returns an error unless s is one of the six lifecycle statuses.
func (s Status) Validate() error {
	switch s {
	case Created, Ready, Picked, EnRoute, Delivered, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// IsDriverVisible reports whether orders in s appear on driver-facing views.
func (s Status) IsDriverVisible() bool {
	return s.Validate() == nil && s != Created
}

// AllowedNext returns the legal successors of s so callers can offer only valid options.
// Terminal and invalid statuses have none.
func (s Status) AllowedNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether to is a legal successor of s.
func (s Status) CanTransitionTo(to Status) bool {
	next, ok := allowedTransitionSet[s]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// ValidateTransition returns a TransitionIsInvalidError when to is not a legal
// successor of s. Repeating the current status, moving backward, skipping a
// status and leaving a terminal status are all rejected.
func (s Status) ValidateTransition(to Status) error {
	if !s.CanTransitionTo(to) {
		return errs.NewTransitionIsInvalidError(s.String(), to.String())
	}
	return nil
}

// ValidateAssign checks that a driver may still be assigned in status s.
// Drivers are assigned before pickup, while the order is created or ready.
func (s Status) ValidateAssign() error {
	if s != Created && s != Ready {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a driver", s.String()),
		)
	}
	return nil
}
