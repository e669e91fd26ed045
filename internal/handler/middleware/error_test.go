//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental-engine/internal/handler/httperr"
	"car-rental-engine/internal/handler/middleware"
	"car-rental-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("car missing"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusNotFound, "Car not found", nil),
		})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("pool exhausted"))
	})
	r.GET("/panic", func(*gin.Context) {
		panic("pricing table corrupted")
	})

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/public", http.StatusNotFound, `{"error":{"message":"Car not found"}}`},
		{"/private", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
		{"/panic", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestCORSMiddleware_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().CORS
	cfg.AllowOrigins = []string{"https://rent.example"}
	cfg.ExposeHeaders = nil

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/cars", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	req.Header.Set("Origin", "https://rent.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://rent.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}
