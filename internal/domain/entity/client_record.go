package entity

import "time"

// ClientRecord is the flat row used by the Active-Record/DAO access path.
// It lives in its own clients table, independent of the relational Client
// entity, and has no relations. CreatedAt is assigned by the store at insert
// time and never updated afterwards.
type ClientRecord struct {
	ID        uint       `db:"id"`
	Name      string     `db:"name" validate:"required"`
	Email     string     `db:"email" validate:"required,email"`
	Age       *int       `db:"age"`
	CreatedAt *time.Time `db:"created_at"`
}
