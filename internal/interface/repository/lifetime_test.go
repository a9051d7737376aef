package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/internal/infrastructure/persistence"
	"transport-data-service/pkg/errs"
	"transport-data-service/pkg/logger"
)

// The store behaves identically under the dial-per-operation strategy: each
// call opens its own connection and releases it, and state still persists
// across operations.
func TestClientRecordStore_PerOperationLifetime(t *testing.T) {
	connector := &persistence.PerOperationConnector{
		Driver:  "sqlite3",
		DSN:     filepath.Join(t.TempDir(), "records.db") + "?_foreign_keys=on",
		Profile: "test",
	}
	store := NewClientRecordStore(connector, logger.NewNop())
	ctx := t.Context()

	require.NoError(t, store.EnsureSchema(ctx))

	rec := &entity.ClientRecord{Name: "Olena", Email: "olena@example.com"}
	require.NoError(t, store.Insert(ctx, rec))
	require.NotZero(t, rec.ID)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "olena@example.com", got.Email)

	affected, err := store.Delete(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestPerOperationConnector_ConnectionErrorIsTyped(t *testing.T) {
	connector := &persistence.PerOperationConnector{
		Driver:  "sqlite3",
		DSN:     filepath.Join(t.TempDir(), "missing", "nested", "records.db"),
		Profile: "broken",
	}

	_, _, err := connector.Acquire(t.Context())
	require.Error(t, err)
	assert.True(t, errs.IsConnection(err), "expected a ConnectionError, got %v", err)
}
