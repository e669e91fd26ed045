//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/infra/uow"
	"car-rental-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedCars writes cars through the production unit of work, spans included.
func SeedCars(t *testing.T, pool *pgxpool.Pool, cars ...*car.Car) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, c := range cars {
			if err := tx.Cars().Create(ctx, c); err != nil {
				return err
			}
			for _, m := range c.Availability().Maintenance() {
				if err := tx.Cars().AddMaintenance(ctx, c.ID(), m); err != nil {
					return err
				}
			}
			for _, span := range c.Availability().Reserved() {
				if err := tx.Reservations().Reserve(ctx, c.ID(), span); err != nil {
					return err
				}
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// CountRows is a raw escape hatch for asserting on side effects the API does not expose.
func CountRows(t *testing.T, conn db.DBTX, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, conn.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table; the goose version table is kept.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
