package entity

// Driver represents a driver employed by the transport company
type Driver struct {
	ID            uint
	FullName      string `validate:"required"`
	LicenseNumber string `validate:"required"`
	Phone         string
}
