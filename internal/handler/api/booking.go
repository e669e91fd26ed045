package api

import (
	"net/http"

	reqdto "car-rental-engine/internal/handler/dto/request"
	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/handler/middleware"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Confirm booking
// @Description Record a paid booking and reserve the car in one step. Fails with 409 when the car was taken meanwhile.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Booking request"
// @Success 201 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToInput(userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmResult(result))
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/bookings/my-bookings [get]
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	rms, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(rms))
}

// @Summary Cancel booking
// @Description Owner or admin; frees the car for the booked window
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err = h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortNoIdentity(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	rm, err := h.q.Get(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}
