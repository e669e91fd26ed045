package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"car-rental-engine/internal/handler/api"
	"car-rental-engine/internal/handler/middleware"
	"car-rental-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Observer       middleware.HTTPObserver
	Gatherer       prometheus.Gatherer

	Cars         *api.CarHandler
	Bookings     *api.BookingHandler
	Reservations *api.ReservationHandler
	Fleet        *api.FleetHandler
	Admin        *api.AdminHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.MetricsMiddleware(p.Observer))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()
	requireAdmin := p.AuthMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/cars"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Cars.List},
			{Method: http.MethodGet, Path: "/cities", Handler: p.Cars.Cities},
			{Method: http.MethodGet, Path: "/check-availability", Handler: p.Cars.CheckAvailability},
			{Method: http.MethodPost, Path: "/calculate-price", Handler: p.Cars.CalculatePrice},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Cars.Get},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Confirm},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: p.Bookings.MyBookings},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Bookings.Cancel},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get, Mw: []gin.HandlerFunc{requireAdmin}},
		})

		internal := apiGroup.Group("/internal/reservations")
		internal.Use(requireAuth, requireAdmin)
		addRoutes(internal, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Reservations.Reserve},
			{Method: http.MethodDelete, Path: "/:carId/:bookingId", Handler: p.Reservations.Release},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: p.Admin.Stats},
			{Method: http.MethodGet, Path: "/revenue", Handler: p.Admin.Revenue},
			{Method: http.MethodPost, Path: "/cars", Handler: p.Fleet.CreateCar},
			{Method: http.MethodPost, Path: "/cars/:id/maintenance", Handler: p.Fleet.ScheduleMaintenance},
			{Method: http.MethodDelete, Path: "/cars/:id/maintenance/:maintenanceId", Handler: p.Fleet.RemoveMaintenance},
			{Method: http.MethodPatch, Path: "/cars/:id/availability", Handler: p.Fleet.SetAvailability},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
