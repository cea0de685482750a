package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler reads drivers straight from the drivers table.
//
// Example:
//
//	handler := NewGetAllDriversQueryHandler(db)
//	drivers, err := handler.Handle(ctx, NewGetAllDriversQuery(&restaurantID))
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver listing queries.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle returns drivers sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			email,
			phone,
			restaurant_id
		FROM drivers`
	args := make([]any, 0, 1)
	if id := query.RestaurantID(); id != nil {
		sql += `
		WHERE restaurant_id = ?`
		args = append(args, id.Bytes())
	}
	sql += `
		ORDER BY name, id`

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d GetAllDriversQueryResponse
		var id, restaurantID uuid.UUID

		if err = rows.Scan(&id, &d.Name, &d.Email, &d.Phone, &restaurantID); err != nil {
			return nil, err
		}

		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if d.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}

		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
