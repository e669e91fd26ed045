package middleware

import (
	"log/slog"
	"slices"

	"car-rental-engine/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets browser clients read the request id of every response.
// A "*" origin means allow-all, which browsers only accept without credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, requestIDHeader) {
		expose = append(expose, requestIDHeader)
	}

	allowAll := slices.Contains(cfg.AllowOrigins, "*")
	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials && !allowAll,
		MaxAge:           cfg.MaxAge,
	}
	if !allowAll {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS configured", "origins", cfg.AllowOrigins, "allow_all", allowAll, "expose", expose)
	return cors.New(corsCfg)
}
