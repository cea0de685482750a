package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists registered drivers, optionally for one restaurant.
//
// Example:
//
//	query := NewGetAllDriversQuery(nil)
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
type GetAllDriversQuery struct {
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates the query. A nil restaurantID lists every driver.
func NewGetAllDriversQuery(restaurantID *kernel.UUID) GetAllDriversQuery {
	return GetAllDriversQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

func (q GetAllDriversQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// GetAllDriversQueryResponse is the driver read model.
type GetAllDriversQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	RestaurantID kernel.UUID
}
