package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/errs"
)

// GormTripRepository implements the TripRepository interface
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GORM trip repository
func NewGormTripRepository(db *gorm.DB) repository.TripRepository {
	return &GormTripRepository{
		db: db,
	}
}

// TripDetails GORM model for database mapping
type TripDetails struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"column:order_id;not null"`
	DriverID  uint    `gorm:"column:driver_id;not null"`
	VehicleID uint    `gorm:"column:vehicle_id;not null"`
	Status    string  `gorm:"column:status;size:50"`
	Cost      float64 `gorm:"column:cost"`

	Order   Orders    `gorm:"foreignKey:OrderID"`
	Driver  Drivers   `gorm:"foreignKey:DriverID"`
	Vehicle Vehicles  `gorm:"foreignKey:VehicleID"`
	Log     *TripLogs `gorm:"foreignKey:TripDetailsID"`
}

// TableName overrides the default table name
func (TripDetails) TableName() string {
	return "trip_details"
}

// TripLogs GORM model for database mapping
type TripLogs struct {
	ID              uint       `gorm:"primaryKey"`
	TripDetailsID   uint       `gorm:"column:trip_details_id;not null"`
	ActualDeparture *time.Time `gorm:"column:actual_departure"`
	ActualArrival   *time.Time `gorm:"column:actual_arrival"`
	Comment         string     `gorm:"column:comment;size:300"`

	TripDetails TripDetails `gorm:"foreignKey:TripDetailsID"`
}

// TableName overrides the default table name
func (TripLogs) TableName() string {
	return "trip_logs"
}

func tripToEntity(m *TripDetails) *entity.TripDetails {
	trip := &entity.TripDetails{
		ID:        m.ID,
		OrderID:   m.OrderID,
		DriverID:  m.DriverID,
		VehicleID: m.VehicleID,
		Status:    m.Status,
		Cost:      m.Cost,
	}
	if m.Log != nil {
		trip.Log = tripLogToEntity(m.Log)
	}
	return trip
}

func tripLogToEntity(m *TripLogs) *entity.TripLog {
	return &entity.TripLog{
		ID:              m.ID,
		TripDetailsID:   m.TripDetailsID,
		ActualDeparture: m.ActualDeparture,
		ActualArrival:   m.ActualArrival,
		Comment:         m.Comment,
	}
}

// List returns all trips ordered by primary key, each with its owned log
// preloaded when one exists
func (r *GormTripRepository) List(ctx context.Context) ([]entity.TripDetails, error) {
	var models []TripDetails
	result := r.db.WithContext(ctx).Preload("Log").Order("id").Find(&models)
	if result.Error != nil {
		return nil, errs.Classify(result.Error)
	}

	trips := make([]entity.TripDetails, 0, len(models))
	for i := range models {
		trips = append(trips, *tripToEntity(&models[i]))
	}
	return trips, nil
}

// GetByID finds a trip by id with its log preloaded; a missing id yields
// (nil, nil)
func (r *GormTripRepository) GetByID(ctx context.Context, id uint) (*entity.TripDetails, error) {
	var model TripDetails
	result := r.db.WithContext(ctx).Preload("Log").Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return tripToEntity(&model), nil
}

// Create inserts a new trip. Order, driver and vehicle references are
// validated by the store's foreign-key constraints.
func (r *GormTripRepository) Create(ctx context.Context, trip *entity.TripDetails) error {
	model := TripDetails{
		OrderID:   trip.OrderID,
		DriverID:  trip.DriverID,
		VehicleID: trip.VehicleID,
		Status:    trip.Status,
		Cost:      trip.Cost,
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model)
	if result.Error != nil {
		return errs.Classify(result.Error)
	}

	trip.ID = model.ID
	return nil
}

// Update overwrites the mutable fields of a trip; the log is untouched
func (r *GormTripRepository) Update(ctx context.Context, id uint, trip *entity.TripDetails) (int64, error) {
	result := r.db.WithContext(ctx).Model(&TripDetails{}).Where("id = ?", id).Updates(map[string]interface{}{
		"order_id":   trip.OrderID,
		"driver_id":  trip.DriverID,
		"vehicle_id": trip.VehicleID,
		"status":     trip.Status,
		"cost":       trip.Cost,
	})
	if result.Error != nil {
		return 0, errs.Classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a trip and its owned log in one transaction. The log goes
// first, otherwise its foreign key would block the trip row.
func (r *GormTripRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_details_id = ?", id).Delete(&TripLogs{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&TripDetails{})
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

// SaveTrip persists the trip and its optional log atomically. A new trip is
// inserted first so the log can reference the assigned id. A log is created
// only when it carries data; an existing log is overwritten in place and
// never recreated.
func (r *GormTripRepository) SaveTrip(ctx context.Context, trip *entity.TripDetails, log *entity.TripLog) error {
	if log == nil {
		log = &entity.TripLog{}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if trip.ID == 0 {
			model := TripDetails{
				OrderID:   trip.OrderID,
				DriverID:  trip.DriverID,
				VehicleID: trip.VehicleID,
				Status:    trip.Status,
				Cost:      trip.Cost,
			}
			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return err
			}
			trip.ID = model.ID
		} else {
			result := tx.Model(&TripDetails{}).Where("id = ?", trip.ID).Updates(map[string]interface{}{
				"order_id":   trip.OrderID,
				"driver_id":  trip.DriverID,
				"vehicle_id": trip.VehicleID,
				"status":     trip.Status,
				"cost":       trip.Cost,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		var existing TripLogs
		err := tx.Where("trip_details_id = ?", trip.ID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if !log.HasData() {
				// Absence is a valid state, not an empty record.
				return nil
			}
			model := TripLogs{
				TripDetailsID:   trip.ID,
				ActualDeparture: log.ActualDeparture,
				ActualArrival:   log.ActualArrival,
				Comment:         log.Comment,
			}
			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return err
			}
			log.ID = model.ID
			log.TripDetailsID = trip.ID
		case err != nil:
			return err
		default:
			result := tx.Model(&TripLogs{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
				"actual_departure": log.ActualDeparture,
				"actual_arrival":   log.ActualArrival,
				"comment":          log.Comment,
			})
			if result.Error != nil {
				return result.Error
			}
			log.ID = existing.ID
			log.TripDetailsID = trip.ID
		}
		return nil
	})
	if err != nil {
		return errs.Classify(err)
	}
	return nil
}

// GetLogByTripID returns the owned log for a trip, or nil when the trip has
// none
func (r *GormTripRepository) GetLogByTripID(ctx context.Context, tripID uint) (*entity.TripLog, error) {
	var model TripLogs
	result := r.db.WithContext(ctx).Where("trip_details_id = ?", tripID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Classify(result.Error)
	}
	return tripLogToEntity(&model), nil
}
