package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/domain/repository"
	"transport-data-service/internal/infrastructure/persistence"
	"transport-data-service/pkg/errs"
	"transport-data-service/pkg/logger"
)

// ClientRecordStore implements the ClientRecordRepository interface over raw
// parameterized SQL. It is the single SQL code path behind both the DAO and
// the Active-Record call conventions.
type ClientRecordStore struct {
	connector persistence.Connector
	log       logger.Logger
}

// NewClientRecordStore creates a new client record store. The connector
// decides the connection lifetime: shared session or dial-per-operation.
func NewClientRecordStore(connector persistence.Connector, log logger.Logger) *ClientRecordStore {
	return &ClientRecordStore{
		connector: connector,
		log:       log,
	}
}

var _ repository.ClientRecordRepository = (*ClientRecordStore)(nil)

const clientsSchemaPostgres = `
CREATE TABLE IF NOT EXISTS clients (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100) UNIQUE NOT NULL,
    age INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const clientsSchemaSQLite = `
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100) UNIQUE NOT NULL,
    age INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates the flat clients table if it is absent. Rerunning is
// a no-op. The DDL is chosen per backing driver.
func (s *ClientRecordStore) EnsureSchema(ctx context.Context) error {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	ddl := clientsSchemaPostgres
	if db.DriverName() == "sqlite3" {
		ddl = clientsSchemaSQLite
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return errs.Classify(err)
	}
	return nil
}

// GetAll returns all client records ordered by primary key
func (s *ClientRecordStore) GetAll(ctx context.Context) ([]entity.ClientRecord, error) {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	records := []entity.ClientRecord{}
	query := "SELECT id, name, email, age, created_at FROM clients ORDER BY id"
	if err := db.SelectContext(ctx, &records, query); err != nil {
		return nil, errs.Classify(err)
	}
	return records, nil
}

// GetByID finds a client record by id; a missing id yields (nil, nil)
func (s *ClientRecordStore) GetByID(ctx context.Context, id uint) (*entity.ClientRecord, error) {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var rec entity.ClientRecord
	query := db.Rebind("SELECT id, name, email, age, created_at FROM clients WHERE id = ?")
	if err := db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Classify(err)
	}
	return &rec, nil
}

// Insert adds a new client record and fills the server-assigned id and
// creation timestamp back into the record
func (s *ClientRecordStore) Insert(ctx context.Context, rec *entity.ClientRecord) error {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	query := db.Rebind("INSERT INTO clients (name, email, age) VALUES (?, ?, ?) RETURNING id, created_at")
	row := db.QueryRowxContext(ctx, query, rec.Name, rec.Email, rec.Age)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return errs.Classify(err)
	}

	s.log.Debug("client record inserted", "id", rec.ID)
	return nil
}

// Update overwrites the mutable fields of a client record; the creation
// timestamp is never touched. 0 affected rows means the id does not exist.
func (s *ClientRecordStore) Update(ctx context.Context, rec *entity.ClientRecord) (int64, error) {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	query := db.Rebind("UPDATE clients SET name = ?, email = ?, age = ? WHERE id = ?")
	result, err := db.ExecContext(ctx, query, rec.Name, rec.Email, rec.Age, rec.ID)
	if err != nil {
		return 0, errs.Classify(err)
	}
	return result.RowsAffected()
}

// Delete removes a client record by id; 0 affected rows means the id does
// not exist
func (s *ClientRecordStore) Delete(ctx context.Context, id uint) (int64, error) {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	query := db.Rebind("DELETE FROM clients WHERE id = ?")
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, errs.Classify(err)
	}
	return result.RowsAffected()
}

// ListTables returns the table names the backing schema currently holds
func (s *ClientRecordStore) ListTables(ctx context.Context) ([]string, error) {
	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	query := `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' ORDER BY table_name`
	if db.DriverName() == "sqlite3" {
		query = `SELECT name FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	}

	tables := []string{}
	if err := db.SelectContext(ctx, &tables, query); err != nil {
		return nil, errs.Classify(err)
	}
	return tables, nil
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DescribeTable returns the column structure of a table. An empty result
// means the table does not exist.
func (s *ClientRecordStore) DescribeTable(ctx context.Context, table string) ([]repository.TableColumn, error) {
	if !identPattern.MatchString(table) {
		return nil, &errs.ValidationError{
			Field:   "table",
			Message: fmt.Sprintf("invalid table name %q", table),
		}
	}

	db, release, err := s.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if db.DriverName() == "sqlite3" {
		return describeTableSQLite(ctx, db, table)
	}
	return describeTablePostgres(ctx, db, table)
}

func describeTablePostgres(ctx context.Context, db *sqlx.DB, table string) ([]repository.TableColumn, error) {
	query := db.Rebind(`SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ?
		ORDER BY ordinal_position`)

	rows, err := db.QueryxContext(ctx, query, table)
	if err != nil {
		return nil, errs.Classify(err)
	}
	defer rows.Close()

	columns := []repository.TableColumn{}
	for rows.Next() {
		var name, dataType, nullable string
		var dflt sql.NullString
		if err := rows.Scan(&name, &dataType, &nullable, &dflt); err != nil {
			return nil, errs.Classify(err)
		}
		columns = append(columns, repository.TableColumn{
			Name:     name,
			DataType: dataType,
			Nullable: nullable == "YES",
			Default:  dflt.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Classify(err)
	}
	return columns, nil
}

func describeTableSQLite(ctx context.Context, db *sqlx.DB, table string) ([]repository.TableColumn, error) {
	// PRAGMA arguments cannot be bound; the identifier was validated above.
	rows, err := db.QueryxContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, errs.Classify(err)
	}
	defer rows.Close()

	columns := []repository.TableColumn{}
	for rows.Next() {
		var cid, notNull, pk int
		var name, dataType string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &dflt, &pk); err != nil {
			return nil, errs.Classify(err)
		}
		columns = append(columns, repository.TableColumn{
			Name:     name,
			DataType: dataType,
			Nullable: notNull == 0,
			Default:  dflt.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Classify(err)
	}
	return columns, nil
}
