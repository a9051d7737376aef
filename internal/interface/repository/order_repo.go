package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/errs"
)

// GormOrderRepository implements the OrderRepository interface
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Orders GORM model for database mapping
type Orders struct {
	ID            uint       `gorm:"primaryKey"`
	ClientID      uint       `gorm:"column:client_id;not null"`
	Route         string     `gorm:"column:route;size:200;not null"`
	DepartureTime *time.Time `gorm:"column:departure_time"`
	ArrivalTime   *time.Time `gorm:"column:arrival_time"`

	Client Clients `gorm:"foreignKey:ClientID"`
}

// TableName overrides the default table name
func (Orders) TableName() string {
	return "orders"
}

func orderToEntity(m *Orders) *entity.Order {
	return &entity.Order{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Route:         m.Route,
		DepartureTime: m.DepartureTime,
		ArrivalTime:   m.ArrivalTime,
	}
}

// List returns all orders ordered by primary key
func (r *GormOrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var models []Orders
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errs.Classify(result.Error)
	}

	orders := make([]entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *orderToEntity(&models[i]))
	}
	return orders, nil
}

// GetByID finds an order by id; a missing id yields (nil, nil)
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var model Orders
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return orderToEntity(&model), nil
}

// Create inserts a new order. The client reference is validated by the
// store's foreign-key constraint, not pre-checked here.
func (r *GormOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	model := Orders{
		ClientID:      order.ClientID,
		Route:         order.Route,
		DepartureTime: order.DepartureTime,
		ArrivalTime:   order.ArrivalTime,
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model)
	if result.Error != nil {
		return errs.Classify(result.Error)
	}

	order.ID = model.ID
	return nil
}

// Update overwrites the mutable fields of an order
func (r *GormOrderRepository) Update(ctx context.Context, id uint, order *entity.Order) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Orders{}).Where("id = ?", id).Updates(map[string]interface{}{
		"client_id":      order.ClientID,
		"route":          order.Route,
		"departure_time": order.DepartureTime,
		"arrival_time":   order.ArrivalTime,
	})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes an order by id. Deletion is restricted while a TripDetails
// still references the order, so a trip can never be orphaned.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trips int64
		if err := tx.Model(&TripDetails{}).Where("order_id = ?", id).Count(&trips).Error; err != nil {
			return err
		}
		if trips > 0 {
			return &errs.ConstraintError{
				Message: fmt.Sprintf("order %d still has trip details; delete the trip first", id),
			}
		}

		result := tx.Where("id = ?", id).Delete(&Orders{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errs.Classify(err)
	}
	return affected, nil
}
