// Package persistence selects the device registry backend configured in storage.driver.
package persistence

import (
	"log/slog"

	"displayfleet/config"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/errors"
	"displayfleet/internal/infra/persistence/memory"
	"displayfleet/internal/infra/persistence/sqlstore"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the registry store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// StoreResult exposes the repository and its transaction manager to Fx
type StoreResult struct {
	fx.Out

	DeviceRepo repository.DeviceRepository
	TxManager  repository.TransactionManager
}

// NewStore builds the repository pair for the configured driver.
func NewStore(params StoreParams) (StoreResult, error) {
	cfg := params.Config
	if cfg.Storage == nil {
		return StoreResult{}, errors.New("storage configuration is required")
	}

	params.Logger.Info("Opening device registry store",
		slog.String("driver", cfg.Storage.Driver),
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()

		return StoreResult{
			DeviceRepo: memory.NewDeviceRepository(store),
			TxManager:  memory.NewTransactionManager(store),
		}, nil

	case config.StorageDriverPostgres, config.StorageDriverSQLite:
		db, err := sqlstore.Open(params.Lc, cfg, params.Logger)
		if err != nil {
			return StoreResult{}, err
		}

		return StoreResult{
			DeviceRepo: sqlstore.NewDeviceRepository(db, cfg.Storage.QueryTimeout),
			TxManager:  sqlstore.NewTransactionManager(db, cfg.Storage.QueryTimeout),
		}, nil

	default:
		return StoreResult{}, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
