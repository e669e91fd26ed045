//go:build unit

package memstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/shared"
	"car-rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve_ConcurrentOverlappingRequestsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	const workers = 16
	var (
		wg        sync.WaitGroup
		wins      atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < workers; i++ {
		span := builder.Span(t, 0, 48, uuid.New())
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if _, err := tx.Cars().FindForUpdate(ctx, c.ID()); err != nil {
					return err
				}
				return tx.Reservations().Reserve(ctx, c.ID(), span)
			})
			switch {
			case err == nil:
				wins.Add(1)
			case infra.IsKind(err, infra.KindConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(workers-1), conflicts.Load())

	stored, err := s.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Len(t, stored.Availability().Reserved(), 1)
	assert.Equal(t, 1, stored.TotalBookings())
}

func TestReserve_TouchingSpansBothSucceed(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	for _, w := range [][2]int{{0, 24}, {24, 48}} {
		span := builder.Span(t, w[0], w[1], uuid.New())
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Reserve(ctx, c.ID(), span)
		})
		require.NoError(t, err)
	}

	stored, err := s.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Len(t, stored.Availability().Reserved(), 2)
}

func TestWithin_ErrorRollsBackEveryWrite(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	b, err := builder.NewBookingBuilder().WithCarID(c.ID()).BuildDomain()
	require.NoError(t, err)
	boom := errors.New("payment mismatch")

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := tx.Reservations().Reserve(ctx, c.ID(), builder.Span(t, 0, 81, b.ID())); err != nil {
			return err
		}
		if err := tx.Cars().AddRevenue(ctx, c.ID(), b.TotalPrice()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := s.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, stored.Availability().Reserved())
	assert.Zero(t, stored.TotalBookings())
	assert.Zero(t, stored.TotalRevenue())

	_, err = s.BookingReads().FindByID(ctx, b.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingCreate_DuplicatePaymentReference(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	first, err := builder.NewBookingBuilder().WithCarID(c.ID()).BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewBookingBuilder().WithCarID(c.ID()).WithWindow(100, 120).BuildDomain()
	require.NoError(t, err)

	create := func(b *booking.Booking) error {
		return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, b)
		})
	}
	require.NoError(t, create(first))
	err = create(second)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestRelease_UnknownBookingReportsNothingRemoved(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	var removed bool
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Reservations().Release(ctx, c.ID(), uuid.New())
		return err
	})
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCompleteFinished_OnlyEndedConfirmedBookings(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	ended := builder.NewBookingBuilder().WithCarID(c.ID()).WithWindow(0, 24).
		With(func(b *builder.BookingBuilder) { b.PaymentReference = "pay_ended" }).BuildReconstructed()
	running := builder.NewBookingBuilder().WithCarID(c.ID()).WithWindow(0, 200).
		With(func(b *builder.BookingBuilder) { b.PaymentReference = "pay_running" }).BuildReconstructed()
	cancelled := builder.NewBookingBuilder().WithCarID(c.ID()).WithWindow(0, 24).WithStatus(booking.StatusCancelled).
		With(func(b *builder.BookingBuilder) { b.PaymentReference = "pay_cancelled" }).BuildReconstructed()

	var n int64
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, b := range []*booking.Booking{ended, running, cancelled} {
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
		}
		var err error
		n, err = tx.Bookings().CompleteFinished(ctx, builder.Hours(48))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.BookingReads().FindByID(ctx, ended.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCompleted.String(), got.Status)
	assert.Equal(t, c.Name(), got.CarName)
}

func TestSearch_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	cheap := builder.NewCarBuilder().WithBaseRate(800).WithCity("Mumbai").BuildReconstructed()
	pricey := builder.NewCarBuilder().WithBaseRate(3000).WithCity("Mumbai").WithBrandModel("Toyota", "Fortuner").BuildReconstructed()
	elsewhere := builder.NewCarBuilder().WithBaseRate(1500).WithCity("Pune").BuildReconstructed()
	hidden := builder.NewCarBuilder().WithCity("Mumbai").Inactive().BuildReconstructed()
	s := New()
	s.Seed(cheap, pricey, elsewhere, hidden)

	got, err := s.Search(ctx, queries.CarFilter{City: "mum", Sort: queries.SortPriceDesc})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, pricey.ID(), got[0].ID())
	assert.Equal(t, cheap.ID(), got[1].ID())

	got, err = s.Search(ctx, queries.CarFilter{Search: "fortun"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pricey.ID(), got[0].ID())

	cities, err := s.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mumbai", "Pune"}, cities)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCarBuilder().BuildReconstructed()
	s := New()
	s.Seed(c)

	user := uuid.New()
	bookings := []*booking.Booking{
		builder.NewBookingBuilder().WithCarID(c.ID()).WithUserID(user).WithWindow(0, 24).
			With(func(b *builder.BookingBuilder) { b.PaymentReference = "pay_a" }).BuildReconstructed(),
		builder.NewBookingBuilder().WithCarID(c.ID()).WithUserID(user).WithWindow(30, 300).
			With(func(b *builder.BookingBuilder) { b.PaymentReference = "pay_b" }).BuildReconstructed(),
	}
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, b := range bookings {
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
		}
		return nil
	}))

	reads := s.BookingReads()
	customers, err := reads.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), customers)

	active, err := reads.CountActiveBookings(ctx, builder.Hours(48))
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	mine, err := reads.ListByUser(ctx, user)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
