// Package driverrepo persists driver aggregates with GORM.
package driverrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        string    `gorm:"not null"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CreatedAt:    aggregate.CreatedAt().UTC(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Email, dto.Phone, restaurantID, dto.CreatedAt)
}
