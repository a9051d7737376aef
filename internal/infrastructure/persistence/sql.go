package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"transport-data-service/internal/infrastructure/config"
	"transport-data-service/pkg/errs"
)

// OpenSQL opens a plain SQL handle for the DAO access path
func OpenSQL(ctx context.Context, profile config.Profile) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", profile.DSN())
	if err != nil {
		return nil, &errs.ConnectionError{Profile: profile.Name, Err: err}
	}
	return db, nil
}

// Connector hands out a SQL handle per operation. The two implementations are
// the two connection-lifetime strategies: a shared session closed at shutdown,
// and a fresh connection dialed for every operation and released on all exit
// paths.
type Connector interface {
	Acquire(ctx context.Context) (*sqlx.DB, func(), error)
}

// SessionConnector shares one long-lived handle; release is a no-op and the
// owner closes the handle at shutdown.
type SessionConnector struct {
	db *sqlx.DB
}

// NewSessionConnector wraps an already-open handle
func NewSessionConnector(db *sqlx.DB) *SessionConnector {
	return &SessionConnector{db: db}
}

// Acquire returns the shared handle
func (c *SessionConnector) Acquire(ctx context.Context) (*sqlx.DB, func(), error) {
	return c.db, func() {}, nil
}

// Close releases the shared handle
func (c *SessionConnector) Close() error {
	return c.db.Close()
}

// PerOperationConnector dials the database on every Acquire; the release
// function closes the connection unconditionally, on all exit paths.
type PerOperationConnector struct {
	Driver  string
	DSN     string
	Profile string
}

// NewPerOperationConnector creates a per-operation connector for a profile
func NewPerOperationConnector(profile config.Profile) *PerOperationConnector {
	return &PerOperationConnector{
		Driver:  "pgx",
		DSN:     profile.DSN(),
		Profile: profile.Name,
	}
}

// Acquire dials a fresh connection
func (c *PerOperationConnector) Acquire(ctx context.Context) (*sqlx.DB, func(), error) {
	db, err := sqlx.ConnectContext(ctx, c.Driver, c.DSN)
	if err != nil {
		return nil, nil, &errs.ConnectionError{Profile: c.Profile, Err: err}
	}
	return db, func() { db.Close() }, nil
}
