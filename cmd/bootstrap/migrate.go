package bootstrap

import (
	"context"
	"time"

	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/pkg/config"

	"go.uber.org/fx"
)

const migrateTimeout = time.Minute

var MigrateModule = fx.Module("migrate",
	fx.Invoke(
		RunMigrations,
	),
)

func RunMigrations(cfg config.Config) error {
	if cfg.Store.Driver != config.StoreDriverPostgres || !cfg.DB.AutoMigrate {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	return db.Migrate(ctx, cfg.DB)
}
