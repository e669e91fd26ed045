package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"car-rental-engine/internal/handler/httperr"
	"car-rental-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler recorded one but wrote nothing.
// Private errors never reach the client and surface as a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		slog.Error("unrendered handler error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"errors", c.Errors.String())
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

// CustomRecovery turns a panic inside a booking or fleet handler into a 500 envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := errs.New(fmt.Sprint(rec))
			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 8))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
		}()
		c.Next()
	}
}
