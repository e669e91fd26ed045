//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"car-rental-engine/cmd/bootstrap"
	"car-rental-engine/cmd/bootstrap/components"
	"car-rental-engine/internal/infra/db"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// pgEndpoint is the host-side address of the shared postgres container.
type pgEndpoint struct {
	host string
	port nat.Port
}

func (e pgEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port.Port(), database)
}

// SharedSuite boots one migrated database and one fx app per suite.
// Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	endpoint := postgresEndpoint(t)
	dbCfg := createDatabase(t, endpoint)

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.Migrate(migrateCtx, dbCfg), "migrations failed")

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	s.DB = pool
	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.Config.Store.Driver = config.StoreDriverPostgres
	s.Router = startApp(t, pool, s.Config)

	slog.Info("e2e environment ready", "database", dbCfg.DBName, "host", endpoint.host, "port", endpoint.port.Port())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

// startApp wires the production engine modules around the test pool.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "fx app started without a router")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// createDatabase gives each suite its own database and drops it afterwards.
func createDatabase(t *testing.T, endpoint pgEndpoint) config.DBConfig {
	name := "rental_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := endpoint.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// the container can accept connections shortly before it accepts DDL
	backoff := retry.WithMaxRetries(5, retry.WithCappedDuration(3*time.Second, retry.NewExponential(250*time.Millisecond)))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if _, err := admin.Exec(ctx, "CREATE DATABASE "+name); err != nil {
			slog.Warn("retrying database creation", "database", name, "error", err.Error())
			return retry.RetryableError(err)
		}
		return nil
	})
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		dropper, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			slog.Warn("drop connection failed", "database", name, "error", err.Error())
			return
		}
		defer dropper.Close()
		if _, err = dropper.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     endpoint.host,
		Port:     endpoint.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// postgresEndpoint starts the shared container on first use. The exclusion
// constraint on reservations needs btree_gist, which ships with the stock image.
func postgresEndpoint(t *testing.T) pgEndpoint {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgEndpoint{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "car-rental-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "failed to start postgres container")

	ctx := context.Background()
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err, "failed to resolve postgres port")
	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to resolve postgres host")
	return pgEndpoint{host: host, port: port}
}
