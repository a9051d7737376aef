package repository

import (
	"gorm.io/gorm"

	"transport-data-service/pkg/errs"
)

// EnsureSchema creates the relational tables if they are absent, including
// primary keys, the vehicle registration uniqueness constraint and all
// foreign keys. Safe to call on every process start; rerunning it neither
// fails nor alters data.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Clients{},
		&Drivers{},
		&Vehicles{},
		&Orders{},
		&TripDetails{},
		&TripLogs{},
	)
	if err != nil {
		return errs.Classify(err)
	}
	return nil
}
