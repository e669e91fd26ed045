package bootstrap

import (
	"log/slog"

	"car-rental-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(LogEffectiveConfig),
)

// LogEffectiveConfig records the settings that change engine behaviour; secrets stay out.
func LogEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	policy := cfg.Pricing.PolicyFile
	if policy == "" {
		policy = "built-in"
	}
	logger.Info("configuration loaded",
		"store_driver", cfg.Store.Driver,
		"pricing_policy", policy,
		"report_timezone", cfg.Report.Location().String(),
		"completion_sweep", cfg.Scheduler.Enabled,
	)
}
