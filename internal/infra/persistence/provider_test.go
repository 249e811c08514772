package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"displayfleet/config"
	"displayfleet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, storage *config.StorageConfig) StoreParams {
	return StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Storage: storage},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewStore_Memory(t *testing.T) {
	result, err := NewStore(newParams(t, &config.StorageConfig{Driver: config.StorageDriverMemory}))
	require.NoError(t, err)

	device, err := result.DeviceRepo.UpsertHeartbeat(context.Background(), &entity.Heartbeat{DeviceID: "tv-01", ReceivedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "tv-01", device.DeviceID)
	assert.NotNil(t, result.TxManager)
}

func TestNewStore_SQLiteInMemory(t *testing.T) {
	params := newParams(t, &config.StorageConfig{
		Driver:      config.StorageDriverSQLite,
		AutoMigrate: true,
		SQLite:      config.SQLiteConfig{Path: ":memory:", BusyTimeout: 1},
	})

	result, err := NewStore(params)
	require.NoError(t, err)

	devices, err := result.DeviceRepo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestNewStore_Errors(t *testing.T) {
	_, err := NewStore(newParams(t, nil))
	assert.ErrorContains(t, err, "storage configuration is required")

	_, err = NewStore(newParams(t, &config.StorageConfig{Driver: "cassandra"}))
	assert.ErrorContains(t, err, "unknown storage driver")

	_, err = NewStore(newParams(t, &config.StorageConfig{Driver: config.StorageDriverPostgres}))
	assert.ErrorContains(t, err, "postgres configuration is required")
}
