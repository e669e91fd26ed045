//go:build e2e

package car_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	resdto "car-rental-engine/internal/handler/dto/response"
	"car-rental-engine/internal/pkg/jwt"
	"car-rental-engine/tests/common/authtest"
	"car-rental-engine/tests/common/builder"
	"car-rental-engine/tests/common/dbtest"
	"car-rental-engine/tests/common/httptest"
	"car-rental-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	carsURL         = "/api/cars"
	carURL          = "/api/cars/%s"
	citiesURL       = "/api/cars/cities"
	availabilityURL = "/api/cars/check-availability"
	quoteURL        = "/api/cars/calculate-price"
	adminCarsURL    = "/api/admin/cars"
	maintenanceURL  = "/api/admin/cars/%s/maintenance"
	toggleURL       = "/api/admin/cars/%s/availability"
)

type CarSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CarSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestCarSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CarSuite))
}

func windowQuery(start, end string) string {
	v := url.Values{}
	v.Set("startDate", start)
	v.Set("endDate", end)
	return v.Encode()
}

func (s *CarSuite) TestListCars() {
	s.Run("Normal case: dated search hides unavailable cars and injects pricing", func() {
		t := s.T()
		free := builder.NewCarBuilder().BuildReconstructed()
		booked := builder.NewCarBuilder().WithReserved(t, 0, 48, uuid.New()).BuildReconstructed()
		disabled := builder.NewCarBuilder().WithManuallyAvailable(false).BuildReconstructed()
		serviced := builder.NewCarBuilder().WithMaintenance(t, 10, 20, "service").BuildReconstructed()
		dbtest.SeedCars(t, s.DB, free, booked, disabled, serviced)

		start := builder.Hours(12).Format("2006-01-02T15:04:05Z07:00")
		end := builder.Hours(30).Format("2006-01-02T15:04:05Z07:00")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"?"+windowQuery(start, end), nil, "")

		var page resdto.CarListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		httptest.AssertRequestID(t, w)
		s.Equal(1, page.Total)
		require.Len(t, page.Data, 1)
		s.Equal(free.ID(), page.Data[0].ID)
		require.NotNil(t, page.Data[0].CalculatedPricing)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL,
			map[string]any{"carId": free.ID(), "startDate": start, "endDate": end}, "")
		var quote resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		if diff := cmp.Diff(quote, *page.Data[0].CalculatedPricing); diff != "" {
			t.Errorf("list pricing differs from quote (-quote +list):\n%s", diff)
		}
	})

	s.Run("Normal case: undated search lists every active car", func() {
		t := s.T()
		dbtest.SeedCars(t, s.DB,
			builder.NewCarBuilder().BuildReconstructed(),
			builder.NewCarBuilder().WithCity("Pune").BuildReconstructed(),
			builder.NewCarBuilder().Inactive().BuildReconstructed(),
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"?limit=1", nil, "")
		var page resdto.CarListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		s.Equal(2, page.Total)
		s.Equal(2, page.TotalPages)
		s.Equal(1, page.Count)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, citiesURL, nil, "")
		var cities resdto.CitiesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cities)
		s.Equal([]string{"Bengaluru", "Pune"}, cities.Cities)
	})
}

func (s *CarSuite) TestCheckAvailability() {
	s.Run("Normal case: touching a reservation end reports BOOKED", func() {
		t := s.T()
		c := builder.NewCarBuilder().WithReserved(t, 0, 24, uuid.New()).BuildReconstructed()
		dbtest.SeedCars(t, s.DB, c)

		q := url.Values{}
		q.Set("carId", c.ID().String())
		q.Set("startDate", builder.Hours(24).Format("2006-01-02T15:04:05Z07:00"))
		q.Set("endDate", builder.Hours(30).Format("2006-01-02T15:04:05Z07:00"))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?"+q.Encode(), nil, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		s.False(res.Available)
		s.Require().NotNil(res.Reason)
		s.Equal("BOOKED", *res.Reason)
	})
}

func (s *CarSuite) TestFleetAdministration() {
	s.Run("Normal case: admin creates a car, blocks it and re-enables it", func() {
		t := s.T()
		admin := s.jwt.GenerateToken(t, uuid.New(), jwt.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminCarsURL, map[string]any{
			"brand": "Tata", "model": "Nexon", "category": "suv", "fuelType": "electric",
			"transmission": "automatic", "seats": 5, "city": "Mumbai", "pricePerDay": 1800,
		}, admin)
		var created resdto.IDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(maintenanceURL, created.ID), map[string]any{
			"startDate": "2030-02-01T00:00:00Z", "endDate": "2030-02-03T00:00:00Z", "reason": "tyres",
		}, admin)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(toggleURL, created.ID),
			map[string]any{"available": false}, admin)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(carURL, created.ID), nil, "")
		var got resdto.CarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal("Tata Nexon", got.Name)
		s.False(got.ManuallyAvailable)
		s.Len(got.Maintenance, 1)
	})

	s.Run("Error case: customers cannot manage the fleet", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), jwt.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminCarsURL, map[string]any{}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}
