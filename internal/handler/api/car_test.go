//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/handler/api"
	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/readmodel"
	"car-rental-engine/internal/usecase/shared"
	"car-rental-engine/tests/common/builder"
	"car-rental-engine/tests/common/httptest"
	"car-rental-engine/tests/common/testutil"
	queriesmock "car-rental-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCarQueries
	handler     *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockQueries)

	s.router.GET("/cars", s.handler.List)
	s.router.GET("/cars/cities", s.handler.Cities)
	s.router.GET("/cars/check-availability", s.handler.CheckAvailability)
	s.router.POST("/cars/calculate-price", s.handler.CalculatePrice)
	s.router.GET("/cars/:id", s.handler.Get)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func sampleCarRM() *readmodel.CarRM {
	return readmodel.CarFromDomain(builder.NewCarBuilder().BuildReconstructed())
}

func sampleQuoteView(carID uuid.UUID) *queries.QuoteView {
	return &queries.QuoteView{
		CarID:           carID,
		CarName:         "Hyundai Creta",
		DurationDays:    3,
		RemainingHours:  9,
		TotalHours:      81,
		DurationText:    "3 days 9 hours",
		HoursLabel:      "3d 9h",
		TotalHoursLabel: "81 hrs",
		Tiers: []queries.TierView{
			{ID: "tier_200", Name: "200 Kms/Day", KmPerDay: 200, IncludedKm: 675, Price: 3375, Tax: 169, FinalPrice: 3544, ExtraKmCharge: 12, SecurityDeposit: 5000},
			{ID: "tier_400", Name: "400 Kms/Day", KmPerDay: 400, IncludedKm: 1350, Price: 5063, Tax: 253, FinalPrice: 5316, ExtraKmCharge: 12, SecurityDeposit: 5000, Recommended: true},
		},
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *CarHandlerTestSuite) TestList() {
	rm := sampleCarRM()

	s.Run("success: filters without dates carry no pricing", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.CarListParams) (*queries.CarListPage, error) {
				s.Nil(p.Window)
				s.Equal("Bengaluru", p.Filter.City)
				s.Equal(queries.CarSort("price"), p.Filter.Sort)
				s.Equal(2, p.Page.Number)
				return &queries.CarListPage{
					Items:       []queries.CarListItem{{Car: rm}},
					Total:       11,
					TotalPages:  2,
					CurrentPage: 2,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?city=Bengaluru&sort=price&page=2", nil, "")

		var body resdto.CarListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
		s.Equal(11, body.Total)
		s.Equal(2, body.TotalPages)
		s.Equal(rm.ID, body.Data[0].ID)
		s.Nil(body.Data[0].CalculatedPricing)
	})

	s.Run("success: dates request availability filtering and quotes", func() {
		quote := sampleQuoteView(rm.ID)
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.CarListParams) (*queries.CarListPage, error) {
				s.Require().NotNil(p.Window)
				s.Equal(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), p.Window.Start.UTC())
				return &queries.CarListPage{
					Items:       []queries.CarListItem{{Car: rm, CalculatedPricing: quote}},
					Total:       1,
					TotalPages:  1,
					CurrentPage: 1,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?startDate=2026-03-10T10:00:00Z&endDate=2026-03-13T19:00:00Z", nil, "")

		var body resdto.CarListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Data[0].CalculatedPricing)
		s.Len(body.Data[0].CalculatedPricing.Tiers, 2)
		s.Equal(int64(1350), body.Data[0].CalculatedPricing.Tiers[1].IncludedKm)
	})

	s.Run("error: 400 when only one date is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?startDate=2026-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed numbers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?minPrice=cheap", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "unsupported sort", err: errs.Mark(errors.New("bad sort"), errs.ErrInvalidInput), expectedStatus: http.StatusBadRequest},
			{name: "end before start", err: errs.ErrInvalidRange, expectedStatus: http.StatusBadRequest},
			{name: "store failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCities
// ================================================================================

func (s *CarHandlerTestSuite) TestCities() {
	s.mockQueries.EXPECT().Cities(gomock.Any()).Return([]string{"Bengaluru", "Chennai"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/cities", nil, "")

	var body resdto.CitiesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]string{"Bengaluru", "Chennai"}, body.Cities)
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *CarHandlerTestSuite) TestCheckAvailability() {
	carID := uuid.New()
	url := "/cars/check-availability?carId=" + carID.String() + "&startDate=2026-03-10&endDate=2026-03-12"

	s.Run("success: reports the blocking reason", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), carID, shared.DateWindow{
			Start: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		}).Return(&queries.AvailabilityResult{
			Available: false,
			Reason:    car.ReasonMaintenance,
			Message:   car.ReasonMaintenance.Message(),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Require().NotNil(body.Reason)
		s.Equal(string(car.ReasonMaintenance), *body.Reason)
		s.NotEmpty(body.Message)
	})

	s.Run("success: reason is null when the car is free", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), carID, gomock.Any()).
			Return(&queries.AvailabilityResult{Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var raw map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		s.Equal(true, raw["available"])
		reason, present := raw["reason"]
		s.True(present)
		s.Nil(reason)
	})

	s.Run("error: 400 on missing or malformed parameters", func() {
		for _, u := range []string{
			"/cars/check-availability?startDate=2026-03-10&endDate=2026-03-12",
			"/cars/check-availability?carId=not-a-uuid&startDate=2026-03-10&endDate=2026-03-12",
			"/cars/check-availability?carId=" + carID.String() + "&startDate=tomorrow&endDate=2026-03-12",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, u, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 404 for unknown car", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), carID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrCarNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

// ================================================================================
// TestCalculatePrice
// ================================================================================

func (s *CarHandlerTestSuite) TestCalculatePrice() {
	carID := uuid.New()
	reqBody := map[string]any{
		"carId":     carID.String(),
		"startDate": "2026-03-10T10:00:00Z",
		"endDate":   "2026-03-13T19:00:00Z",
	}

	s.Run("success: returns every tier", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), carID, gomock.Any()).Return(sampleQuoteView(carID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars/calculate-price", reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(carID, body.CarID)
		s.Equal(3, body.Duration.Days)
		s.Equal("81 hrs", body.Duration.TotalHours)
		s.Require().Len(body.Tiers, 2)
		s.True(body.Tiers[1].Recommended)
		s.Equal(int64(3544), body.Tiers[0].FinalPrice)

		var raw struct {
			Tiers []map[string]any `json:"pricingTiers"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Require().Len(raw.Tiers, 2)
		s.Equal(true, raw.Tiers[1]["recommended"])
		s.NotContains(raw.Tiers[1], "isRecommended")
	})

	s.Run("error: 400 on missing fields", func() {
		for _, key := range []string{"carId", "startDate", "endDate"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars/calculate-price",
				testutil.BodyMap(s.T(), reqBody, testutil.Without(key)), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 400 when end is not after start", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), carID, gomock.Any()).Return(nil, errs.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars/calculate-price",
			testutil.BodyMap(s.T(), reqBody, testutil.Set("endDate", "2026-03-10T10:00:00Z")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CarHandlerTestSuite) TestGet() {
	rm := sampleCarRM()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+rm.ID.String(), nil, "")

		var body resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Hyundai Creta", body.Name)
		s.Equal(int64(1000), body.Pricing.PerDay)
		s.True(body.ManuallyAvailable)
		s.NotNil(body.Maintenance)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/123", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for unknown car", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errs.ErrCarNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}
