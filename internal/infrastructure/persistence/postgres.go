package persistence

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"transport-data-service/internal/infrastructure/config"
	"transport-data-service/pkg/errs"
)

// OpenGorm opens the long-lived ORM session for the given profile. The
// returned handle is shared for the whole process lifetime and closed at
// shutdown; this is the per-process-session connection strategy.
func OpenGorm(profile config.Profile) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(profile.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, &errs.ConnectionError{Profile: profile.Name, Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &errs.ConnectionError{Profile: profile.Name, Err: err}
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, &errs.ConnectionError{Profile: profile.Name, Err: err}
	}

	return db, nil
}

// CloseGorm releases the session opened by OpenGorm
func CloseGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
