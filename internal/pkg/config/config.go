package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, schedules, limits)
// A .env file in the working directory is read first; real env vars win.
// DB_USER, DB_PASSWORD and DB_NAME are only required for STORE_DRIVER=postgres.
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Report    ReportConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// JWTConfig only verifies tokens; they are issued by the auth service.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type PricingConfig struct {
	PolicyFile string `envconfig:"PRICING_POLICY_FILE"`
}

type ReportConfig struct {
	TimeZone string `envconfig:"REPORT_TIMEZONE" default:"UTC"`
}

type SchedulerConfig struct {
	Enabled        bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	CompletionSpec string `envconfig:"SCHEDULER_COMPLETION_SPEC" default:"@every 10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone name is unknown.
func (c *ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres && cfg.Store.Driver != StoreDriverMemory {
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == StoreDriverPostgres && (cfg.DB.User == "" || cfg.DB.Password == "" || cfg.DB.DBName == "") {
		return Config{}, errors.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres store")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "UTC",
			AutoMigrate: true,
			MaxConns:    5,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-signing-tokens",
		},
		Report: ReportConfig{
			TimeZone: "UTC",
		},
		Scheduler: SchedulerConfig{
			Enabled:        false,
			CompletionSpec: "@every 10m",
		},
	}
}
