package app

import (
	"context"

	"gorm.io/gorm"

	domainrepo "transport-data-service/internal/domain/repository"
	"transport-data-service/internal/infrastructure/config"
	"transport-data-service/internal/infrastructure/persistence"
	"transport-data-service/internal/interface/repository"
	"transport-data-service/internal/usecase"
	"transport-data-service/pkg/logger"
	"transport-data-service/pkg/metrics"
)

// App is the collaborator-facing surface of the access layer. Presentation
// layers (forms, menus) call these contracts and never build SQL themselves,
// except through the guarded Executor.
type App struct {
	Clients  domainrepo.ClientRepository
	Drivers  domainrepo.DriverRepository
	Vehicles domainrepo.VehicleRepository
	Orders   domainrepo.OrderRepository
	Trips    *usecase.TripService

	Records  domainrepo.ClientRecordRepository
	Executor *repository.QueryExecutor

	gormDB    *gorm.DB
	connector *persistence.SessionConnector
}

// New connects both access paths for the given profile, ensures both
// schemas, and wires every repository. The ORM session and the SQL handle
// stay open until Close. The record store gets its own database on the same
// server so its flat clients table never collides with the relational one.
func New(ctx context.Context, profile, recordsProfile config.Profile, log logger.Logger, m *metrics.Metrics) (*App, error) {
	gormDB, err := persistence.OpenGorm(profile)
	if err != nil {
		return nil, err
	}
	if err := repository.EnsureSchema(gormDB); err != nil {
		persistence.CloseGorm(gormDB)
		return nil, err
	}

	sqlDB, err := persistence.OpenSQL(ctx, recordsProfile)
	if err != nil {
		persistence.CloseGorm(gormDB)
		return nil, err
	}
	connector := persistence.NewSessionConnector(sqlDB)

	records := repository.NewClientRecordStore(connector, log)
	if err := records.EnsureSchema(ctx); err != nil {
		connector.Close()
		persistence.CloseGorm(gormDB)
		return nil, err
	}

	tripRepo := repository.NewGormTripRepository(gormDB)

	return &App{
		Clients:  repository.NewGormClientRepository(gormDB),
		Drivers:  repository.NewGormDriverRepository(gormDB),
		Vehicles: repository.NewGormVehicleRepository(gormDB),
		Orders:   repository.NewGormOrderRepository(gormDB),
		Trips:    usecase.NewTripService(tripRepo, log),

		Records:  records,
		Executor: repository.NewQueryExecutor(connector, log, m),

		gormDB:    gormDB,
		connector: connector,
	}, nil
}

// Close releases both long-lived connections
func (a *App) Close() error {
	err := a.connector.Close()
	if cerr := persistence.CloseGorm(a.gormDB); err == nil {
		err = cerr
	}
	return err
}
