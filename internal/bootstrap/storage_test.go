package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/bootstrap"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/cache"
	"github.com/jhoicas/azimuth-crm/pkg/config"
	"github.com/jhoicas/azimuth-crm/pkg/logger"
)

func TestOpenStorage_Memory(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverMemory}}

	s, err := bootstrap.OpenStorage(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Ping)
	c := entity.NewClientWithTaxID("Memoria", "1")
	require.NoError(t, s.Clients.Create(context.Background(), c))
	assert.True(t, c.HasID())
}

func TestOpenStorage_SQLiteConCache(t *testing.T) {
	cfg := &config.Config{
		DB: config.DBConfig{
			Driver:      config.DriverSQLite,
			SQLitePath:  filepath.Join(t.TempDir(), "clients.db"),
			AutoMigrate: true,
		},
		Cache: config.CacheConfig{Enabled: true, MaxItems: 100, TTL: time.Minute},
	}
	ctx := context.Background()

	s, err := bootstrap.OpenStorage(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(ctx))
	assert.IsType(t, &cache.ClientRepository{}, s.Clients)

	c := entity.NewClientWithTaxID("Azimut Plus", "7701234567")
	require.NoError(t, s.Clients.Create(ctx, c))
	got, err := s.Clients.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Azimut Plus", got.CompanyName)
}

func TestOpenStorage_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: "oracle"}}
	_, err := bootstrap.OpenStorage(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
