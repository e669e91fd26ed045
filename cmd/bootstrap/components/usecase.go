package components

import (
	"car-rental-engine/internal/domain/pricing"
	"car-rental-engine/internal/pkg/clock"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewReservationUseCase,
		commands.NewFleetUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCarQueries,
		queries.NewBookingQueries,
		NewReportQueries,
	),
)

// NewPricingCalculator loads PRICING_POLICY_FILE when set and fails startup on an invalid policy.
func NewPricingCalculator(cfg config.Config) (*pricing.Calculator, error) {
	policy, err := pricing.LoadPolicy(cfg.Pricing.PolicyFile)
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculator(policy), nil
}

func NewReportQueries(store queries.ReportReadStore, clk clock.Clock, cfg config.Config) queries.ReportQueries {
	return queries.NewReportQueries(store, clk, cfg.Report.Location())
}
