package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/pkg/errs"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProfileLocal, cfg.ActiveProfile)

	local, err := cfg.ProfileByName(ProfileLocal)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", local.Host)
	assert.Equal(t, 5432, local.Port)

	docker, err := cfg.ProfileByName(ProfileDocker)
	require.NoError(t, err)
	assert.Equal(t, 5433, docker.Port)

	assert.Equal(t, "recordsdb", cfg.RecordsDBName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PROFILE", ProfileDocker)
	t.Setenv("DOCKER_DB_HOST", "db.internal")
	t.Setenv("DOCKER_DB_PORT", "6543")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ProfileDocker, cfg.ActiveProfile)

	docker, err := cfg.ProfileByName(ProfileDocker)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", docker.Host)
	assert.Equal(t, 6543, docker.Port)
}

func TestProfileByName_Unknown(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	_, err = cfg.ProfileByName("staging")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestProfile_DSN(t *testing.T) {
	p := Profile{
		Name:     "local",
		Host:     "127.0.0.1",
		Port:     5432,
		DBName:   "transportdb",
		User:     "transport",
		Password: "secret",
	}
	assert.Equal(t,
		"host=127.0.0.1 port=5432 dbname=transportdb user=transport password=secret sslmode=disable",
		p.DSN())
}

func TestProfile_WithDBName(t *testing.T) {
	p := Profile{Name: "local", Host: "127.0.0.1", Port: 5432, DBName: "transportdb", User: "transport"}

	records := p.WithDBName("recordsdb")
	assert.Equal(t, "recordsdb", records.DBName)
	assert.Equal(t, p.Host, records.Host)
	assert.Equal(t, "transportdb", p.DBName)
}
