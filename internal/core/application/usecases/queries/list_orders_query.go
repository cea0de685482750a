package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders for the restaurant board, optionally narrowed to
// one status.
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. An empty status lists every order.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or order.Unknown when unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse is the order summary read model.
type ListOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	Status     order.Status
	Total      kernel.Money
	CreatedAt  time.Time
}
