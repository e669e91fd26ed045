package bootstrap

import (
	"car-rental-engine/internal/handler/middleware"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenVerifier)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret)
}
