package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// DriverRepository defines the interface for driver operations
type DriverRepository interface {
	List(ctx context.Context) ([]entity.Driver, error)
	GetByID(ctx context.Context, id uint) (*entity.Driver, error)
	Create(ctx context.Context, driver *entity.Driver) error
	Update(ctx context.Context, id uint, driver *entity.Driver) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
