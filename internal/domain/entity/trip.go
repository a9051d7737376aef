package entity

import "time"

// Trip status values used by callers; the store does not restrict the set.
const (
	TripStatusPlanned    = "planned"
	TripStatusInProgress = "in_progress"
	TripStatusDone       = "done"
)

// TripDetails represents the execution record of an order: who drives what
// and for how much. At most one TripDetails exists per order. Log is the
// optional owned TripLog, populated on reads that preload it.
type TripDetails struct {
	ID        uint
	OrderID   uint `validate:"required"`
	DriverID  uint `validate:"required"`
	VehicleID uint `validate:"required"`
	Status    string
	Cost      float64
	Log       *TripLog
}

// TripLog holds the actual execution times and a free-text comment for a
// trip. It is exclusively owned by its TripDetails: created lazily once any
// of its fields has data, updated in place afterwards, and deleted together
// with the trip.
type TripLog struct {
	ID              uint
	TripDetailsID   uint
	ActualDeparture *time.Time
	ActualArrival   *time.Time
	Comment         string
}

// HasData reports whether the log carries anything worth persisting. An
// all-empty log is represented by absence, not by an empty row.
func (l *TripLog) HasData() bool {
	if l == nil {
		return false
	}
	return l.ActualDeparture != nil || l.ActualArrival != nil || l.Comment != ""
}
