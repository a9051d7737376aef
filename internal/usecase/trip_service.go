package usecase

import (
	"context"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/pkg/logger"
	"transport-data-service/pkg/utils"
)

// TripInput carries the caller-entered fields for one trip save. TripID of
// zero means a new trip. The actual times arrive as text in the fixed
// timestamp format; empty strings mean absent.
type TripInput struct {
	TripID    uint
	OrderID   uint
	DriverID  uint
	VehicleID uint
	Status    string
	Cost      float64

	ActualDeparture string
	ActualArrival   string
	Comment         string
}

// TripService orchestrates composite trip+log persistence. It owns the
// validation and timestamp parsing that must happen before any store call;
// the transactional ordering lives in the repository.
type TripService struct {
	trips repository.TripRepository
	log   logger.Logger
}

// NewTripService creates a new trip service
func NewTripService(trips repository.TripRepository, log logger.Logger) *TripService {
	return &TripService{
		trips: trips,
		log:   log,
	}
}

// Save persists the trip described by the input together with its optional
// log and returns the stored trip. A log row comes into existence only once
// any of the actual-time or comment fields has data, and is then updated in
// place on later saves.
func (s *TripService) Save(ctx context.Context, in TripInput) (*entity.TripDetails, error) {
	trip := &entity.TripDetails{
		ID:        in.TripID,
		OrderID:   in.OrderID,
		DriverID:  in.DriverID,
		VehicleID: in.VehicleID,
		Status:    in.Status,
		Cost:      in.Cost,
	}
	if err := entity.Validate(trip); err != nil {
		return nil, err
	}

	departure, err := utils.ParseTimestamp("actual_departure", in.ActualDeparture)
	if err != nil {
		return nil, err
	}
	arrival, err := utils.ParseTimestamp("actual_arrival", in.ActualArrival)
	if err != nil {
		return nil, err
	}

	tripLog := &entity.TripLog{
		ActualDeparture: departure,
		ActualArrival:   arrival,
		Comment:         in.Comment,
	}

	if err := s.trips.SaveTrip(ctx, trip, tripLog); err != nil {
		return nil, err
	}

	if tripLog.ID != 0 {
		trip.Log = tripLog
	}
	s.log.Info("trip saved", "trip_id", trip.ID, "order_id", trip.OrderID)
	return trip, nil
}

// Delete removes a trip and its owned log. 0 affected rows means the trip
// did not exist.
func (s *TripService) Delete(ctx context.Context, tripID uint) (int64, error) {
	affected, err := s.trips.Delete(ctx, tripID)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.log.Info("trip deleted", "trip_id", tripID)
	}
	return affected, nil
}

// List returns all trips with their logs preloaded
func (s *TripService) List(ctx context.Context) ([]entity.TripDetails, error) {
	return s.trips.List(ctx)
}

// Get returns one trip with its log, or nil when it does not exist
func (s *TripService) Get(ctx context.Context, tripID uint) (*entity.TripDetails, error) {
	return s.trips.GetByID(ctx, tripID)
}
