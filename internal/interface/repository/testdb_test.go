package repository

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/mattn/go-sqlite3"

	"transport-data-service/internal/infrastructure/persistence"
	"transport-data-service/pkg/logger"
)

// newTestDB opens an in-memory SQLite database with foreign keys enforced
// and the full relational schema in place. A single pooled connection keeps
// the in-memory database alive for the test's duration.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, EnsureSchema(db))
	return db
}

// newTestStore opens an in-memory SQLite-backed client record store with its
// schema ensured, wrapped in a session connector.
func newTestStore(t *testing.T) *ClientRecordStore {
	t.Helper()

	db, err := sqlx.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := NewClientRecordStore(persistence.NewSessionConnector(db), logger.NewNop())
	require.NoError(t, store.EnsureSchema(t.Context()))
	return store
}
