package entity

import "time"

// Order represents a transport order placed by a client. Planned departure
// and arrival are optional until scheduling happens.
type Order struct {
	ID            uint
	ClientID      uint   `validate:"required"`
	Route         string `validate:"required"`
	DepartureTime *time.Time
	ArrivalTime   *time.Time
}
