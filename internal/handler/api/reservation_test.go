//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"car-rental-engine/internal/handler/api"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/shared"
	"car-rental-engine/tests/common/httptest"
	"car-rental-engine/tests/common/testutil"
	commandsmock "car-rental-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands)

	s.router.POST("/reservations", h.Reserve)
	s.router.DELETE("/reservations/:carId/:bookingId", h.Release)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestReserve() {
	carID, bookingID := uuid.New(), uuid.New()
	reqBody := map[string]any{
		"carId":     carID.String(),
		"bookingId": bookingID.String(),
		"startDate": "2026-03-10T10:00:00Z",
		"endDate":   "2026-03-12T10:00:00Z",
	}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), commands.ReserveInput{
			CarID:     carID,
			BookingID: bookingID,
			Window: shared.DateWindow{
				Start: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
			},
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the span overlaps", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("exclusion violation"), errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "car no longer available")
	})

	s.Run("error: 404 for unknown car", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(errs.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})

	s.Run("error: 400 on missing booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			testutil.BodyMap(s.T(), reqBody, testutil.Without("bookingId")), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	carID, bookingID := uuid.New(), uuid.New()
	url := "/reservations/" + carID.String() + "/" + bookingID.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), carID, bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when nothing was reserved", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), carID, bookingID).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/x/"+bookingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+carID.String()+"/y", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
