package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/internal/domain/entity"
	"transport-data-service/pkg/errs"
)

func TestVehicleRepository_CreateAndGetByID(t *testing.T) {
	repo := NewGormVehicleRepository(newTestDB(t))
	ctx := t.Context()

	vehicle := &entity.Vehicle{
		RegNumber:   "AA1234BB",
		VehicleType: "truck",
		Capacity:    20,
		Description: "refrigerated",
	}
	require.NoError(t, repo.Create(ctx, vehicle))
	require.NotZero(t, vehicle.ID)

	got, err := repo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *vehicle, *got)
}

func TestVehicleRepository_Create_DuplicateRegNumber(t *testing.T) {
	repo := NewGormVehicleRepository(newTestDB(t))
	ctx := t.Context()

	require.NoError(t, repo.Create(ctx, &entity.Vehicle{RegNumber: "AA1234BB", VehicleType: "truck"}))

	err := repo.Create(ctx, &entity.Vehicle{RegNumber: "AA1234BB", VehicleType: "van"})
	require.Error(t, err)
	assert.True(t, errs.IsConstraint(err), "expected a ConstraintError, got %v", err)

	vehicles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
}

func TestVehicleRepository_UpdateAndDelete(t *testing.T) {
	repo := NewGormVehicleRepository(newTestDB(t))
	ctx := t.Context()

	vehicle := &entity.Vehicle{RegNumber: "BC5678CE", VehicleType: "bus", Capacity: 50}
	require.NoError(t, repo.Create(ctx, vehicle))

	affected, err := repo.Update(ctx, vehicle.ID, &entity.Vehicle{
		RegNumber:   "BC5678CE",
		VehicleType: "bus",
		Capacity:    55,
		Description: "updated",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, got.Capacity)
	assert.Equal(t, "updated", got.Description)

	affected, err = repo.Delete(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Update(ctx, vehicle.ID, got)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
