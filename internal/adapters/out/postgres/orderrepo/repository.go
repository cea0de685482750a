package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByDriver returns every order assigned to driverID, oldest first.
func (r *GormOrderRepository) ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("driver_id = ?", driverID.Bytes())
	})
}

// ListAll returns every order, oldest first.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, nil)
}

// ListReadyUnassigned returns ready orders that have no driver yet.
func (r *GormOrderRepository) ListReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND driver_id IS NULL", order.Ready.String())
	})
}

// ListActive returns assigned orders that are not in a terminal status.
func (r *GormOrderRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("driver_id IS NOT NULL AND status NOT IN ?",
			[]string{order.Delivered.String(), order.Canceled.String()})
	})
}

// CompareAndSwapStatus updates the status only if the stored one still equals expected.
func (r *GormOrderRepository) CompareAndSwapStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), next.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Update("status", next.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, id, expected)
	}

	return nil
}

// AssignDriver sets the driver while the order is still in the expected status and
// not assigned to someone else.
func (r *GormOrderRepository) AssignDriver(
	ctx context.Context,
	id kernel.UUID,
	expected order.Status,
	driverID kernel.UUID,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND (driver_id IS NULL OR driver_id = ?)",
			id.Bytes(), expected.String(), driverID.Bytes()).
		Update("driver_id", driverID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, id, expected)
	}

	return nil
}

func (r *GormOrderRepository) conflictOrNotFound(ctx context.Context, id kernel.UUID, expected order.Status) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return errs.NewConcurrencyConflictError("order", id.String(), expected.String())
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(ctx context.Context, scope func(db *gorm.DB) *gorm.DB) ([]*order.Order, error) {
	db := r.withItems(ctx)
	if scope != nil {
		db = db.Scopes(scope)
	}

	var dtos []OrderDTO
	if err := db.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
