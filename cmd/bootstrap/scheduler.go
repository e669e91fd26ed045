package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-engine/internal/infra/scheduler"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartScheduler,
	),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, bookings commands.BookingCommands, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("booking completion sweep disabled")
		return nil
	}

	s, err := scheduler.New(cfg.Scheduler.CompletionSpec, bookings, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			logger.Info("booking completion sweep scheduled", "spec", cfg.Scheduler.CompletionSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
