package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// OrderRepository defines the interface for order operations. Delete is
// restricted: an order that still has a TripDetails cannot be removed, the
// caller gets a ConstraintError instead of an orphaned trip.
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, id uint, order *entity.Order) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
