package bootstrap

import (
	"car-rental-engine/internal/handler/middleware"
	"car-rental-engine/internal/infra/metrics"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			metrics.New,
			fx.As(new(middleware.HTTPObserver)),
			fx.As(new(commands.ReservationRecorder)),
			fx.As(new(queries.QuoteRecorder)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
