package httperr

import (
	"errors"
	"net/http"

	"car-rental-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope shared by every endpoint.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the error envelope and keeps err on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	sentinel error
	status   int
	msg      string
}

// first match wins
var rules = []rule{
	{errs.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrInvalidTier, http.StatusBadRequest, "Unknown pricing tier"},
	{errs.ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{errs.ErrBookingNotActive, http.StatusBadRequest, "Booking can no longer be changed"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrMaintenanceNotFound, http.StatusNotFound, "Maintenance window not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrConflict, http.StatusConflict, "car no longer available"},
	{errs.ErrDuplicateBooking, http.StatusConflict, "Booking already recorded for this payment"},
}

// Classify maps a use-case error onto a status and public message; unknown errors are a 500.
func Classify(err error) (int, string) {
	for _, r := range rules {
		if errs.Is(err, r.sentinel) {
			return r.status, r.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError writes the envelope chosen by Classify.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
