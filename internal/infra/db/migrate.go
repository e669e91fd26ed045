package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"car-rental-engine/internal/infra/db/migrations"
	"car-rental-engine/internal/pkg/config"

	_ "github.com/lib/pq" // PostgreSQL driver for goose
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending embedded migrations. goose needs database/sql, so a
// short-lived lib/pq connection is opened next to the pgx pool.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	sqlDB, err := sql.Open("postgres", cfg.BuildDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	return MigrateDB(ctx, sqlDB)
}

func MigrateDB(ctx context.Context, sqlDB *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
