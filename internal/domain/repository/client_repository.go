package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// ClientRepository defines the interface for client operations
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	GetByID(ctx context.Context, id uint) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, id uint, client *entity.Client) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
