package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle operations
type VehicleRepository interface {
	List(ctx context.Context) ([]entity.Vehicle, error)
	GetByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	Update(ctx context.Context, id uint, vehicle *entity.Vehicle) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
