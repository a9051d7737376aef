package entity

// Vehicle represents a vehicle in the company fleet. RegNumber is globally
// unique; the store enforces it.
type Vehicle struct {
	ID          uint
	RegNumber   string `validate:"required"`
	VehicleType string
	Capacity    int
	Description string
}
