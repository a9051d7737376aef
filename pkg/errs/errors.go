package errs

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConnectionError means the database could not be reached or authenticated against.
// It is fatal to the current operation only, never to the process.
type ConnectionError struct {
	Profile string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to database (profile %q): %v", e.Profile, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ValidationError is detected before any store call: missing required field,
// non-numeric id, unparsable timestamp, disallowed statement verb.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConstraintError is a unique or foreign-key violation reported by the store.
// Code and Message carry the driver-reported values verbatim.
type ConstraintError struct {
	Code    string
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("constraint violation: %s", e.Message)
	}
	return fmt.Sprintf("constraint violation (%s): %s", e.Code, e.Message)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Classify maps a driver error to the typed taxonomy. Anything that is not a
// recognized constraint violation is returned unchanged; the transaction has
// already been rolled back by the caller either way.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23 — integrity constraint violation
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
			return &ConstraintError{
				Code:    pgErr.Code,
				Message: pgErr.Message,
				Err:     err,
			}
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return &ConstraintError{
				Code:    sqliteErr.ExtendedCode.Error(),
				Message: sqliteErr.Error(),
				Err:     err,
			}
		}
		return err
	}

	return err
}

// IsConstraint reports whether err is (or wraps) a ConstraintError
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConnection reports whether err is (or wraps) a ConnectionError
func IsConnection(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
