package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the postgres pool; the in-memory driver gets a nil pool and
// components.NewPersistence never touches it.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("in-memory store selected; bookings are lost on restart")
		return nil, nil
	}

	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func(_ context.Context) {
		stat := pool.Stat()
		logger.Info("draining database pool", "acquired", stat.AcquiredConns(), "idle", stat.IdleConns())
		closePool()
	}))
	return pool, nil
}
