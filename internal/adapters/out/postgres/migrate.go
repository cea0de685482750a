package postgres

import (
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents before children.
func Models() []any {
	return []any{
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&cartrepo.CartSessionDTO{},
		&cartrepo.CartLineDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
