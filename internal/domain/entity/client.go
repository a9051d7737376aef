package entity

// Client type values
const (
	ClientTypeCompany = "company"
	ClientTypePerson  = "person"
)

// Client represents a customer of the transport company, either a company or
// a private person. A client owns zero or more orders.
type Client struct {
	ID         uint
	ClientType string `validate:"required,oneof=company person"`
	Name       string `validate:"required"`
	Contacts   string
}
