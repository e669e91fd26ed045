package api

import (
	"net/http"
	"time"

	reqdto "car-rental-engine/internal/handler/dto/request"
	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/pkg/config"
	"car-rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q   queries.ReportQueries
	loc *time.Location
}

func NewAdminHandler(q queries.ReportQueries, cfg config.Config) *AdminHandler {
	return &AdminHandler{q: q, loc: cfg.Report.Location()}
}

// @Summary Dashboard stats
// @Description Counters, recent bookings and the revenue chart. Without dates the last six months are used.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end (inclusive day)"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	window, ok := h.bindWindow(c)
	if !ok {
		return
	}
	stats, err := h.q.Dashboard(c.Request.Context(), window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(stats))
}

// @Summary Revenue chart
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start"
// @Param endDate query string false "Range end (inclusive day)"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	window, ok := h.bindWindow(c)
	if !ok {
		return
	}
	series, err := h.q.Revenue(c.Request.Context(), window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueSeries(series))
}

func (h *AdminHandler) bindWindow(c *gin.Context) (queries.ReportWindow, bool) {
	var query reqdto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return queries.ReportWindow{}, false
	}
	window, err := query.ToWindow(h.loc)
	if err != nil {
		abortWithUseCaseError(c, err)
		return queries.ReportWindow{}, false
	}
	return window, true
}
