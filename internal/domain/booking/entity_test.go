//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmedBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, int64(3544), actual.TotalPrice())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{name: "missing user", mutate: func(b *builder.BookingBuilder) { b.UserID = uuid.Nil }, errIs: booking.ErrMissingUser},
		{name: "missing car", mutate: func(b *builder.BookingBuilder) { b.CarID = uuid.Nil }, errIs: booking.ErrMissingCar},
		{name: "blank tier", mutate: func(b *builder.BookingBuilder) { b.TierID = " " }, errIs: booking.ErrMissingTier},
		{name: "negative price", mutate: func(b *builder.BookingBuilder) { b.TotalPrice = -1 }, errIs: booking.ErrNegativePrice},
		{name: "blank payment reference", mutate: func(b *builder.BookingBuilder) { b.PaymentReference = "" }, errIs: booking.ErrMissingPaymentReference},
		{
			name:   "payment reference too long",
			mutate: func(b *builder.BookingBuilder) { b.PaymentReference = strings.Repeat("x", booking.MaxPaymentReferenceLength+1) },
			errIs:  booking.ErrPaymentReferenceTooLong,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	now := builder.Hours(100)

	t.Run("cancel confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("cancel twice", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()
		require.ErrorIs(t, b.Cancel(now), booking.ErrInvalidStatusTransition)
	})

	t.Run("cancel completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildReconstructed()
		require.ErrorIs(t, b.Cancel(now), booking.ErrInvalidStatusTransition)
	})

	t.Run("complete after end", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithWindow(0, 81).BuildReconstructed()
		require.NoError(t, b.Complete(builder.Hours(81)))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("complete before end", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithWindow(0, 81).BuildReconstructed()
		require.ErrorIs(t, b.Complete(builder.Hours(80).Add(59*time.Minute)), booking.ErrInvalidStatusTransition)
	})
}

func TestStatus_CountsAsRevenue(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.CountsAsRevenue())
	assert.True(t, booking.StatusCompleted.CountsAsRevenue())
	assert.False(t, booking.StatusPending.CountsAsRevenue())
	assert.False(t, booking.StatusCancelled.CountsAsRevenue())
	assert.False(t, booking.Status("refunded").IsValid())
}
