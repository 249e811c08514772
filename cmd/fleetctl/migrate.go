package main

import (
	"context"
	"log/slog"

	"displayfleet/config"
	logs "displayfleet/internal/infra/log"
	"displayfleet/internal/infra/persistence/sqlstore"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// runMigrate opens the configured SQL store with auto-migration forced on, then closes it.
func runMigrate(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if cfg.Storage.Driver == config.StorageDriverMemory {
		return errors.New("the memory storage driver has no schema to migrate")
	}
	cfg.Storage.AutoMigrate = true

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(logs.New),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) error {
			if _, err := sqlstore.Open(lc, cfg, logger); err != nil {
				return err
			}
			logger.Info("Schema migrated", slog.String("driver", cfg.Storage.Driver))

			return nil
		}),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to migrate")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect")
	}

	return errors.WithStack(app.Stop(ctx))
}
