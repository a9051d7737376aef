package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/errs"
)

// GormVehicleRepository implements the VehicleRepository interface
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository
func NewGormVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &GormVehicleRepository{
		db: db,
	}
}

// Vehicles GORM model for database mapping
type Vehicles struct {
	ID          uint   `gorm:"primaryKey"`
	RegNumber   string `gorm:"column:reg_number;size:50;not null;uniqueIndex"`
	VehicleType string `gorm:"column:vehicle_type;size:50"`
	Capacity    int    `gorm:"column:capacity"`
	Description string `gorm:"column:description;size:200"`
}

// TableName overrides the default table name
func (Vehicles) TableName() string {
	return "vehicles"
}

func vehicleToEntity(m *Vehicles) *entity.Vehicle {
	return &entity.Vehicle{
		ID:          m.ID,
		RegNumber:   m.RegNumber,
		VehicleType: m.VehicleType,
		Capacity:    m.Capacity,
		Description: m.Description,
	}
}

// List returns all vehicles ordered by primary key
func (r *GormVehicleRepository) List(ctx context.Context) ([]entity.Vehicle, error) {
	var models []Vehicles
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errs.Classify(result.Error)
	}

	vehicles := make([]entity.Vehicle, 0, len(models))
	for i := range models {
		vehicles = append(vehicles, *vehicleToEntity(&models[i]))
	}
	return vehicles, nil
}

// GetByID finds a vehicle by id; a missing id yields (nil, nil)
func (r *GormVehicleRepository) GetByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var model Vehicles
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return vehicleToEntity(&model), nil
}

// Create inserts a new vehicle. A duplicate registration number surfaces as
// a ConstraintError and no row is inserted.
func (r *GormVehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	model := Vehicles{
		RegNumber:   vehicle.RegNumber,
		VehicleType: vehicle.VehicleType,
		Capacity:    vehicle.Capacity,
		Description: vehicle.Description,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return errs.Classify(result.Error)
	}

	vehicle.ID = model.ID
	return nil
}

// Update overwrites the mutable fields of a vehicle
func (r *GormVehicleRepository) Update(ctx context.Context, id uint, vehicle *entity.Vehicle) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Vehicles{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reg_number":   vehicle.RegNumber,
		"vehicle_type": vehicle.VehicleType,
		"capacity":     vehicle.Capacity,
		"description":  vehicle.Description,
	})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a vehicle by id
func (r *GormVehicleRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Vehicles{})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}
