package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries without loading their items.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns matching orders oldest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			driver_id,
			status,
			total_amount,
			created_at
		FROM orders`
	args := make([]any, 0, 1)
	if status := query.Status(); status != order.Unknown {
		sql += `
		WHERE status = ?`
		args = append(args, status.String())
	}
	sql += `
		ORDER BY created_at, id`

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, customerID uuid.UUID
			driverID       *uuid.UUID
			status         string
			total          int64
			createdAt      time.Time
		)

		if err = rows.Scan(&id, &customerID, &driverID, &status, &total, &createdAt); err != nil {
			return nil, err
		}

		resp, convErr := toListOrdersResponse(id, customerID, driverID, status, total, createdAt)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func toListOrdersResponse(
	id, customerID uuid.UUID,
	driverID *uuid.UUID,
	status string,
	total int64,
	createdAt time.Time,
) (ListOrdersQueryResponse, error) {
	var (
		resp ListOrdersQueryResponse
		err  error
	)

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return resp, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return resp, err
	}
	if driverID != nil {
		d, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return resp, idErr
		}
		resp.DriverID = &d
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return resp, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return resp, err
	}
	resp.CreatedAt = createdAt.UTC()

	return resp, nil
}
