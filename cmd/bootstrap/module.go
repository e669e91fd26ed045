package bootstrap

import (
	"log/slog"

	"car-rental-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// InfraModule carries process-level dependencies shared by every store driver.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MigrateModule,
	JWTModule,
	MetricsModule,
)

// EngineModule is the availability, pricing and booking engine behind the HTTP API.
var EngineModule = fx.Options(
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)

var Module = fx.Options(
	InfraModule,
	EngineModule,
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
	}),
)
