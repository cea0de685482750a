// Package cartrepo persists customer cart sessions with GORM.
package cartrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartSessionDTO is one customer shopping session.
type CartSessionDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;index;not null"`
	TouchedAt  time.Time     `gorm:"index;not null"`
	Lines      []CartLineDTO `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart sessions.
func (CartSessionDTO) TableName() string {
	return "cart_sessions"
}

// CartLineDTO is one product in a session's cart. The composite primary key
// keeps a single line per product.
type CartLineDTO struct {
	SessionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"primaryKey"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(session cart.Session) CartSessionDTO {
	lines := session.Snapshot().Lines()
	lineDTOs := make([]CartLineDTO, len(lines))
	for i, line := range lines {
		lineDTOs[i] = CartLineDTO{
			SessionID: session.ID().Bytes(),
			ProductID: line.ProductID(),
			Position:  i,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
		}
	}

	return CartSessionDTO{
		ID:         session.ID().Bytes(),
		CustomerID: session.CustomerID().Bytes(),
		TouchedAt:  session.TouchedAt().UTC(),
		Lines:      lineDTOs,
	}
}

func toDomain(dto CartSessionDTO) (cart.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.Session{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return cart.Session{}, err
	}

	lines := make([]cart.Line, len(dto.Lines))
	for i, lineDTO := range dto.Lines {
		price, priceErr := kernel.NewMoney(lineDTO.UnitPrice)
		if priceErr != nil {
			return cart.Session{}, priceErr
		}
		lines[i], err = cart.RestoreLine(lineDTO.ProductID, lineDTO.Name, price, lineDTO.Quantity)
		if err != nil {
			return cart.Session{}, err
		}
	}

	return cart.RestoreSession(id, customerID, cart.FromLines(lines), dto.TouchedAt)
}
