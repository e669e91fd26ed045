package api

import (
	"net/http"

	reqdto "car-rental-engine/internal/handler/dto/request"
	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FleetHandler struct {
	cmds commands.FleetCommands
}

func NewFleetHandler(cmds commands.FleetCommands) *FleetHandler {
	return &FleetHandler{cmds: cmds}
}

// @Summary Create car
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/cars [post]
func (h *FleetHandler) CreateCar(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	id, err := h.cmds.CreateCar(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Schedule maintenance
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.MaintenanceRequest true "Maintenance window"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/cars/{id}/maintenance [post]
func (h *FleetHandler) ScheduleMaintenance(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req reqdto.MaintenanceRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	window, err := req.Window()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	id, err := h.cmds.ScheduleMaintenance(c.Request.Context(), carID, window, req.Reason)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Remove maintenance
// @Tags fleet
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param maintenanceId path string true "Maintenance ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/cars/{id}/maintenance/{maintenanceId} [delete]
func (h *FleetHandler) RemoveMaintenance(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	maintenanceID, err := uuid.Parse(c.Param("maintenanceId"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err = h.cmds.RemoveMaintenance(c.Request.Context(), carID, maintenanceID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle availability
// @Description Manually enable or disable a car for new bookings
// @Tags fleet
// @Accept json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.AvailabilityToggleRequest true "Availability flag"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/cars/{id}/availability [patch]
func (h *FleetHandler) SetAvailability(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	var req reqdto.AvailabilityToggleRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err = h.cmds.SetManualAvailability(c.Request.Context(), carID, *req.Available); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
