package cartrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartSessionRepository implements CartSessionRepository using GORM.
type GormCartSessionRepository struct {
	db *gorm.DB
}

// NewGormCartSessionRepository creates a new GORM cart session repository.
func NewGormCartSessionRepository(db *gorm.DB) *GormCartSessionRepository {
	return &GormCartSessionRepository{db: db}
}

// Get loads a session with its lines in insertion order.
func (r *GormCartSessionRepository) Get(ctx context.Context, id kernel.UUID) (cart.Session, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate loads the session with SELECT ... FOR UPDATE. Concurrent
// writers of the same session queue on the row until the holder's
// transaction ends, so read-modify-write cycles do not lose updates.
func (r *GormCartSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (cart.Session, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Open inserts the fresh session row unless one exists, then locks and loads
// the stored session. Two first adds to the same session therefore serialize
// on the row instead of racing to insert its lines.
func (r *GormCartSessionRepository) Open(ctx context.Context, fresh cart.Session) (cart.Session, error) {
	if err := fresh.Validate(); err != nil {
		return cart.Session{}, err
	}

	dto := fromDomain(fresh)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Omit("Lines").
		Create(&dto).Error; err != nil {
		return cart.Session{}, err
	}

	return r.GetForUpdate(ctx, fresh.ID())
}

func (r *GormCartSessionRepository) get(db *gorm.DB, id kernel.UUID) (cart.Session, error) {
	if err := id.Validate(); err != nil {
		return cart.Session{}, err
	}

	var dto CartSessionDTO
	err := db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cart.Session{}, errs.NewObjectNotFoundError("cart session", id.String())
		}
		return cart.Session{}, err
	}

	return toDomain(dto)
}

// Save upserts the session row and replaces its lines.
func (r *GormCartSessionRepository) Save(ctx context.Context, session cart.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer_id", "touched_at"}),
		}).Omit("Lines").Create(&dto).Error; err != nil {
			return err
		}

		if err := tx.Where("session_id = ?", dto.ID).Delete(&CartLineDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Lines) == 0 {
			return nil
		}
		return tx.Create(&dto.Lines).Error
	})
}

// Delete removes the session and its lines.
func (r *GormCartSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id.Bytes()).Delete(&CartLineDTO{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id.Bytes()).Delete(&CartSessionDTO{}).Error
	})
}

// DeleteIdleSince removes every session last touched before cutoff.
func (r *GormCartSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		idle := tx.Model(&CartSessionDTO{}).Select("id").Where("touched_at < ?", cutoff.UTC())
		if err := tx.Where("session_id IN (?)", idle).Delete(&CartLineDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where("touched_at < ?", cutoff.UTC()).Delete(&CartSessionDTO{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	})

	return removed, err
}
