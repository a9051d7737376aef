package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/errs"
)

// GormDriverRepository implements the DriverRepository interface
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository
func NewGormDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &GormDriverRepository{
		db: db,
	}
}

// Drivers GORM model for database mapping
type Drivers struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"column:full_name;size:100;not null"`
	LicenseNumber string `gorm:"column:license_number;size:50;not null"`
	Phone         string `gorm:"column:phone;size:50"`
}

// TableName overrides the default table name
func (Drivers) TableName() string {
	return "drivers"
}

func driverToEntity(m *Drivers) *entity.Driver {
	return &entity.Driver{
		ID:            m.ID,
		FullName:      m.FullName,
		LicenseNumber: m.LicenseNumber,
		Phone:         m.Phone,
	}
}

// List returns all drivers ordered by primary key
func (r *GormDriverRepository) List(ctx context.Context) ([]entity.Driver, error) {
	var models []Drivers
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errs.Classify(result.Error)
	}

	drivers := make([]entity.Driver, 0, len(models))
	for i := range models {
		drivers = append(drivers, *driverToEntity(&models[i]))
	}
	return drivers, nil
}

// GetByID finds a driver by id; a missing id yields (nil, nil)
func (r *GormDriverRepository) GetByID(ctx context.Context, id uint) (*entity.Driver, error) {
	var model Drivers
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return driverToEntity(&model), nil
}

// Create inserts a new driver and fills the assigned id back into the entity
func (r *GormDriverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	model := Drivers{
		FullName:      driver.FullName,
		LicenseNumber: driver.LicenseNumber,
		Phone:         driver.Phone,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return errs.Classify(result.Error)
	}

	driver.ID = model.ID
	return nil
}

// Update overwrites the mutable fields of a driver
func (r *GormDriverRepository) Update(ctx context.Context, id uint, driver *entity.Driver) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Drivers{}).Where("id = ?", id).Updates(map[string]interface{}{
		"full_name":      driver.FullName,
		"license_number": driver.LicenseNumber,
		"phone":          driver.Phone,
	})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a driver by id
func (r *GormDriverRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Drivers{})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}
