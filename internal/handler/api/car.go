package api

import (
	"net/http"

	reqdto "car-rental-engine/internal/handler/dto/request"
	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	q queries.CarQueries
}

func NewCarHandler(q queries.CarQueries) *CarHandler {
	return &CarHandler{q: q}
}

// @Summary List cars
// @Description Filter, sort and paginate active cars. With startDate and endDate only available cars are returned, each with its price quote.
// @Tags cars
// @Produce json
// @Param city query string false "City (substring, case-insensitive)"
// @Param category query string false "Category"
// @Param transmission query string false "Transmission"
// @Param fuelType query string false "Fuel type"
// @Param search query string false "Brand, model, category or city substring"
// @Param minPrice query int false "Minimum per-day rate"
// @Param maxPrice query int false "Maximum per-day rate"
// @Param seats query int false "Minimum seats"
// @Param featured query bool false "Featured only"
// @Param sort query string false "-createdAt | createdAt | price | -price"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param startDate query string false "Rental start"
// @Param endDate query string false "Rental end"
// @Success 200 {object} resdto.CarListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var query reqdto.CarListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCarListPage(page)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List cities
// @Description Distinct cities that have at least one active, bookable car
// @Tags cars
// @Produce json
// @Success 200 {object} resdto.CitiesResponse
// @Router /api/cars/cities [get]
func (h *CarHandler) Cities(c *gin.Context) {
	cities, err := h.q.Cities(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CitiesResponse{Cities: cities})
}

// @Summary Check availability
// @Tags cars
// @Produce json
// @Param carId query string true "Car ID"
// @Param startDate query string true "Rental start"
// @Param endDate query string true "Rental end"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/check-availability [get]
func (h *CarHandler) CheckAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}
	carID, window, err := query.Parse()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.q.CheckAvailability(c.Request.Context(), carID, window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Calculate price
// @Description Quote every pricing tier for a rental window
// @Tags cars
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/calculate-price [post]
func (h *CarHandler) CalculatePrice(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	window, err := req.Window()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), req.CarID, window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromQuoteView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	rm, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCarRM(rm)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
