package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/internal/domain/entity"
)

func TestClientRepository_CreateAndGetByID(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))
	ctx := t.Context()

	client := &entity.Client{
		ClientType: entity.ClientTypeCompany,
		Name:       "Acme",
		Contacts:   "a@x.com",
	}
	require.NoError(t, repo.Create(ctx, client))
	require.NotZero(t, client.ID)

	got, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, client.ID, got.ID)
	assert.Equal(t, entity.ClientTypeCompany, got.ClientType)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "a@x.com", got.Contacts)
}

func TestClientRepository_GetByID_Missing(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))

	got, err := repo.GetByID(t.Context(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientRepository_List_OrderedByID(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))
	ctx := t.Context()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.Client{
			ClientType: entity.ClientTypePerson,
			Name:       name,
		}))
	}

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "first", clients[0].Name)
	assert.Equal(t, "second", clients[1].Name)
	assert.Equal(t, "third", clients[2].Name)
	assert.Less(t, clients[0].ID, clients[1].ID)
	assert.Less(t, clients[1].ID, clients[2].ID)
}

func TestClientRepository_Update(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))
	ctx := t.Context()

	client := &entity.Client{ClientType: entity.ClientTypePerson, Name: "before"}
	require.NoError(t, repo.Create(ctx, client))

	affected, err := repo.Update(ctx, client.ID, &entity.Client{
		ClientType: entity.ClientTypeCompany,
		Name:       "after",
		Contacts:   "new@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, entity.ClientTypeCompany, got.ClientType)
	assert.Equal(t, "new@x.com", got.Contacts)
}

func TestClientRepository_Update_MissingIDLeavesStateUnchanged(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))
	ctx := t.Context()

	client := &entity.Client{ClientType: entity.ClientTypePerson, Name: "only"}
	require.NoError(t, repo.Create(ctx, client))

	affected, err := repo.Update(ctx, 9999, &entity.Client{
		ClientType: entity.ClientTypeCompany,
		Name:       "ghost",
	})
	require.NoError(t, err)
	assert.Zero(t, affected)

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "only", clients[0].Name)
}

func TestClientRepository_Delete(t *testing.T) {
	repo := NewGormClientRepository(newTestDB(t))
	ctx := t.Context()

	client := &entity.Client{ClientType: entity.ClientTypePerson, Name: "gone"}
	require.NoError(t, repo.Create(ctx, client))

	affected, err := repo.Delete(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	affected, err = repo.Delete(ctx, client.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
