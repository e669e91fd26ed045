package components

import (
	"car-rental-engine/internal/handler"
	"car-rental-engine/internal/handler/api"
	"car-rental-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCarHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewFleetHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
