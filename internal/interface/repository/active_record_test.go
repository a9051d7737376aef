package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/pkg/errs"
)

func TestActiveClientRecord_SaveInsertsThenUpdates(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	rec := NewActiveClientRecord(store)
	rec.Name = "Marta"
	rec.Email = "marta@example.com"
	require.NoError(t, rec.Save(ctx))
	require.NotZero(t, rec.ID)
	require.NotNil(t, rec.CreatedAt)

	rec.Name = "Marta K."
	require.NoError(t, rec.Save(ctx))

	found, err := Find(ctx, store, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Marta K.", found.Name)

	all, err := All(ctx, store)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestActiveClientRecord_SaveValidatesBeforeStore(t *testing.T) {
	store := newTestStore(t)

	rec := NewActiveClientRecord(store)
	rec.Email = "no-name@example.com"
	err := rec.Save(t.Context())
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err), "expected a ValidationError, got %v", err)

	all, err := All(t.Context(), store)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestActiveClientRecord_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	rec := NewActiveClientRecord(store)
	rec.Name = "gone"
	rec.Email = "gone@example.com"
	require.NoError(t, rec.Save(ctx))

	affected, err := rec.Delete(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := Find(ctx, store, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestActiveClientRecord_DeleteUnsaved(t *testing.T) {
	store := newTestStore(t)

	rec := NewActiveClientRecord(store)
	affected, err := rec.Delete(t.Context())
	require.NoError(t, err)
	assert.Zero(t, affected)
}
