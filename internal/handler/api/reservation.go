package api

import (
	"net/http"

	reqdto "car-rental-engine/internal/handler/dto/request"
	"car-rental-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservationHandler exposes the committer to the booking flow.
type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Reserve car
// @Description Attach a booking's span to the car if nothing overlaps
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reservation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/internal/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err = h.cmds.Reserve(c.Request.Context(), in); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Release reservation
// @Tags reservations
// @Security BearerAuth
// @Param carId path string true "Car ID"
// @Param bookingId path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/internal/reservations/{carId}/{bookingId} [delete]
func (h *ReservationHandler) Release(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err = h.cmds.Release(c.Request.Context(), carID, bookingID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
