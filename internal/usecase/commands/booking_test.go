//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/pricing"
	"car-rental-engine/internal/infra/memstore"
	"car-rental-engine/internal/pkg/clock"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/shared"
	"car-rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *outcomeRecorder) ReservationAttempt(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *outcomeRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes...)
}

func window(fromHour, toHour int) shared.DateWindow {
	return shared.DateWindow{Start: builder.Hours(fromHour), End: builder.Hours(toHour)}
}

// spanWatchUoW records, for each booking insert, whether the car already held the
// booking's span at that moment.
type spanWatchUoW struct {
	*memstore.Store
	mu      sync.Mutex
	spanned []bool
}

func (u *spanWatchUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, spanWatchTx{Tx: tx, uow: u})
	})
}

type spanWatchTx struct {
	shared.Tx
	uow *spanWatchUoW
}

func (t spanWatchTx) Bookings() shared.BookingRepository {
	return spanWatchBookings{BookingRepository: t.Tx.Bookings(), uow: t.uow}
}

type spanWatchBookings struct {
	shared.BookingRepository
	uow *spanWatchUoW
}

func (r spanWatchBookings) Create(ctx context.Context, b *booking.Booking) error {
	held := false
	if c, err := r.uow.FindByID(ctx, b.CarID()); err == nil {
		for _, span := range c.Availability().Reserved() {
			held = held || span.BookingID() == b.ID()
		}
	}
	r.uow.mu.Lock()
	r.uow.spanned = append(r.uow.spanned, held)
	r.uow.mu.Unlock()
	return r.BookingRepository.Create(ctx, b)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	recorder *outcomeRecorder
	cmds     commands.BookingCommands
	carID    uuid.UUID
	userID   uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(builder.BaseTime.Add(-24 * time.Hour))
	s.recorder = &outcomeRecorder{}
	s.cmds = commands.NewBookingUseCase(s.store, pricing.NewDefaultCalculator(), s.clock, s.recorder)

	c := builder.NewCarBuilder().BuildReconstructed()
	s.store.Seed(c)
	s.carID = c.ID()
	s.userID = uuid.New()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) confirm(userID uuid.UUID, w shared.DateWindow, tier, payment string) (*commands.ConfirmBookingResult, error) {
	return s.cmds.Confirm(s.ctx, commands.ConfirmBookingInput{
		UserID:           userID,
		CarID:            s.carID,
		Window:           w,
		TierID:           tier,
		PaymentReference: payment,
	})
}

func (s *BookingCommandsTestSuite) TestConfirm() {
	s.Run("success: prices the tier and reserves the car", func() {
		res, err := s.confirm(s.userID, window(0, 81), "tier_200", "pay_001")
		s.Require().NoError(err)
		s.Equal(int64(3544), res.TotalPrice)

		c, err := s.store.FindByID(s.ctx, s.carID)
		s.Require().NoError(err)
		s.Require().Len(c.Availability().Reserved(), 1)
		s.Equal(res.BookingID, c.Availability().Reserved()[0].BookingID())
		s.Equal(1, c.TotalBookings())
		s.Equal(int64(3544), c.TotalRevenue())
		s.Equal([]string{commands.OutcomeReserved}, s.recorder.snapshot())
	})

	s.Run("error: overlapping window conflicts and leaves no booking behind", func() {
		other := uuid.New()
		_, err := s.confirm(other, window(80, 100), "tier_400", "pay_002")
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrConflict))

		mine, lerr := s.store.BookingReads().ListByUser(s.ctx, other)
		s.Require().NoError(lerr)
		s.Empty(mine)
		s.Equal([]string{commands.OutcomeReserved, commands.OutcomeConflict}, s.recorder.snapshot())
	})

	s.Run("success: a window touching the end is free", func() {
		_, err := s.confirm(uuid.New(), window(81, 90), "tier_1000", "pay_003")
		s.NoError(err)
	})

	s.Run("error: reused payment reference", func() {
		_, err := s.confirm(s.userID, window(200, 210), "tier_200", "pay_001")
		s.True(errs.Is(err, commands.ErrDuplicateBooking))
	})

	s.Run("error: rejected before touching the store", func() {
		_, err := s.confirm(s.userID, window(300, 310), "tier_999", "pay_004")
		s.True(errs.Is(err, commands.ErrInvalidTier))

		_, err = s.confirm(s.userID, window(310, 300), "tier_200", "pay_005")
		s.True(errs.Is(err, commands.ErrInvalidRange))

		_, err = s.cmds.Confirm(s.ctx, commands.ConfirmBookingInput{
			UserID: s.userID, CarID: uuid.New(), Window: window(300, 310), TierID: "tier_200", PaymentReference: "pay_006",
		})
		s.True(errs.Is(err, commands.ErrCarNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestConfirm_UnbookableCar() {
	t := s.T()
	tests := []struct {
		name string
		car  *builder.CarBuilder
	}{
		{"maintenance covers the window", builder.NewCarBuilder().WithMaintenance(t, 0, 48, "service")},
		{"maintenance touches the window start", builder.NewCarBuilder().WithMaintenance(t, 0, 10, "service")},
		{"manually disabled", builder.NewCarBuilder().WithManuallyAvailable(false)},
		{"inactive", builder.NewCarBuilder().Inactive()},
	}

	for i, tt := range tests {
		s.Run(tt.name, func() {
			c := tt.car.BuildReconstructed()
			s.store.Seed(c)
			user := uuid.New()

			_, err := s.cmds.Confirm(s.ctx, commands.ConfirmBookingInput{
				UserID:           user,
				CarID:            c.ID(),
				Window:           window(10, 20),
				TierID:           "tier_200",
				PaymentReference: fmt.Sprintf("pay_blocked_%d", i),
			})
			s.Require().Error(err)
			s.True(errs.Is(err, commands.ErrConflict))

			mine, lerr := s.store.BookingReads().ListByUser(s.ctx, user)
			s.Require().NoError(lerr)
			s.Empty(mine)

			stored, ferr := s.store.FindByID(s.ctx, c.ID())
			s.Require().NoError(ferr)
			s.Empty(stored.Availability().Reserved())
			s.Zero(stored.TotalRevenue())
		})
	}
	s.Empty(s.recorder.snapshot())
}

func (s *BookingCommandsTestSuite) TestConfirm_SpanCommitsBeforeBookingRow() {
	uow := &spanWatchUoW{Store: s.store}
	cmds := commands.NewBookingUseCase(uow, pricing.NewDefaultCalculator(), s.clock, nil)

	res, err := cmds.Confirm(s.ctx, commands.ConfirmBookingInput{
		UserID: s.userID, CarID: s.carID, Window: window(0, 24), TierID: "tier_200", PaymentReference: "pay_ordered",
	})
	s.Require().NoError(err)
	s.Equal([]bool{true}, uow.spanned)

	_, err = cmds.Confirm(s.ctx, commands.ConfirmBookingInput{
		UserID: s.userID, CarID: s.carID, Window: window(48, 72), TierID: "tier_200", PaymentReference: "pay_ordered",
	})
	s.True(errs.Is(err, commands.ErrDuplicateBooking))

	c, ferr := s.store.FindByID(s.ctx, s.carID)
	s.Require().NoError(ferr)
	s.Require().Len(c.Availability().Reserved(), 1)
	s.Equal(res.BookingID, c.Availability().Reserved()[0].BookingID())
	s.Equal(res.TotalPrice, c.TotalRevenue())
}

func (s *BookingCommandsTestSuite) TestConfirm_ConcurrentRequestsForSameWindow() {
	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		payment := "pay_race_" + uuid.NewString()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.confirm(uuid.New(), window(0, 48), "tier_200", payment)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(workers-1, conflicts)
}

func (s *BookingCommandsTestSuite) TestCancel() {
	res, err := s.confirm(s.userID, window(0, 24), "tier_200", "pay_cancel")
	s.Require().NoError(err)

	s.Run("error: another customer may not cancel", func() {
		err := s.cmds.Cancel(s.ctx, res.BookingID, shared.Actor{UserID: uuid.New()})
		s.True(errs.Is(err, commands.ErrForbidden))
	})

	s.Run("success: owner cancels and the window frees up", func() {
		s.Require().NoError(s.cmds.Cancel(s.ctx, res.BookingID, shared.Actor{UserID: s.userID}))

		c, err := s.store.FindByID(s.ctx, s.carID)
		s.Require().NoError(err)
		s.Empty(c.Availability().Reserved())
		s.Equal(int64(0), c.TotalRevenue())

		_, err = s.confirm(uuid.New(), window(0, 24), "tier_200", "pay_after_cancel")
		s.NoError(err)
	})

	s.Run("error: cancelling twice", func() {
		err := s.cmds.Cancel(s.ctx, res.BookingID, shared.Actor{UserID: s.userID})
		s.True(errs.Is(err, commands.ErrBookingNotActive))
	})

	s.Run("error: unknown booking", func() {
		err := s.cmds.Cancel(s.ctx, uuid.New(), shared.Actor{UserID: s.userID, IsAdmin: true})
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestCompleteFinished() {
	_, err := s.confirm(s.userID, window(0, 24), "tier_200", "pay_done")
	s.Require().NoError(err)
	_, err = s.confirm(s.userID, window(48, 72), "tier_200", "pay_later")
	s.Require().NoError(err)

	s.clock.Set(builder.Hours(30))
	n, err := s.cmds.CompleteFinished(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.cmds.CompleteFinished(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}
