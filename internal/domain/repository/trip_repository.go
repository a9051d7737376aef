package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// TripRepository defines the interface for trip operations. A trip owns its
// TripLog: Delete removes the log in the same transaction, and SaveTrip is
// the only way a log is ever created or updated.
type TripRepository interface {
	List(ctx context.Context) ([]entity.TripDetails, error)
	GetByID(ctx context.Context, id uint) (*entity.TripDetails, error)
	Create(ctx context.Context, trip *entity.TripDetails) error
	Update(ctx context.Context, id uint, trip *entity.TripDetails) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)

	// SaveTrip persists the trip and its optional log atomically. A missing
	// trip is inserted first so the log can reference its id; an existing
	// log is overwritten in place, never recreated.
	SaveTrip(ctx context.Context, trip *entity.TripDetails, log *entity.TripLog) error

	// GetLogByTripID returns the owned log, or nil when the trip has none.
	GetLogByTripID(ctx context.Context, tripID uint) (*entity.TripLog, error)
}
