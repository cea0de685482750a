package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartSessionRepository stores customer shopping sessions between requests.
type CartSessionRepository interface {
	// Get returns the session, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (cart.Session, error)

	// GetForUpdate returns the session like Get and holds a row lock on it
	// until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (cart.Session, error)

	// Open returns the stored session locked like GetForUpdate. When no session
	// with fresh's ID exists, fresh is stored first. An existing session is
	// returned as stored, whoever owns it.
	Open(ctx context.Context, fresh cart.Session) (cart.Session, error)

	// Save creates or replaces the session and its lines.
	Save(ctx context.Context, session cart.Session) error

	// Delete removes the session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince removes sessions last touched before cutoff and reports
	// how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error)
}
