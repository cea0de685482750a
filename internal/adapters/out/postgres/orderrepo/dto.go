// Package orderrepo persists order aggregates with GORM. Orders and their lines
// live in the orders and order_items tables; the status is stored as its wire token.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	DriverID      *uuid.UUID     `gorm:"type:uuid;index"`
	Status        string         `gorm:"type:varchar(16);index;not null"`
	TotalAmount   int64          `gorm:"not null"`
	Address       string         `gorm:"not null"`
	PaymentMethod string         `gorm:"type:varchar(8);not null"`
	CreatedAt     time.Time      `gorm:"index;not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in their original order.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID string    `gorm:"not null"`
	Name      string    `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		}
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		DriverID:      driverID,
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.Total().Amount(),
		Address:       aggregate.Delivery().Address(),
		PaymentMethod: string(aggregate.Delivery().PaymentMethod()),
		CreatedAt:     aggregate.CreatedAt().UTC(),
		Items:         itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, len(dto.Items))
	for i, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		items[i], err = order.NewItem(itemDTO.ProductID, itemDTO.Name, price, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(dto.Address, order.PaymentMethod(dto.PaymentMethod))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, driverID, items, total, status, delivery, dto.CreatedAt)
}
