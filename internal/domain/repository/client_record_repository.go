package repository

import (
	"context"

	"transport-data-service/internal/domain/entity"
)

// TableColumn describes one column of a table as the catalog reports it
type TableColumn struct {
	Name     string
	DataType string
	Nullable bool
	Default  string
}

// ClientRecordRepository defines the interface for the flat client-record
// rows used by the DAO access path
type ClientRecordRepository interface {
	EnsureSchema(ctx context.Context) error
	GetAll(ctx context.Context) ([]entity.ClientRecord, error)
	GetByID(ctx context.Context, id uint) (*entity.ClientRecord, error)
	Insert(ctx context.Context, rec *entity.ClientRecord) error
	Update(ctx context.Context, rec *entity.ClientRecord) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)

	// Catalog introspection
	ListTables(ctx context.Context) ([]string, error)
	DescribeTable(ctx context.Context, table string) ([]TableColumn, error)
}
