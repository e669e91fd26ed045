//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CarID            uuid.UUID
	Start            time.Time
	End              time.Time
	TierID           string
	TotalPrice       int64
	Status           booking.Status
	PaymentReference string
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		CarID:            uuid.New(),
		Start:            Hours(0),
		End:              Hours(81),
		TierID:           "tier_200",
		TotalPrice:       3544,
		Status:           booking.StatusConfirmed,
		PaymentReference: "pay_Q1w2E3r4",
		CreatedAt:        BaseTime.Add(-48 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	iv, err := interval.New(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewConfirmedBooking(b.UserID, b.CarID, iv, b.TierID, b.TotalPrice, b.PaymentReference, b.CreatedAt)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.CarID,
		interval.MustNew(b.Start, b.End),
		b.TierID, b.TotalPrice, b.Status, b.PaymentReference,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithCarID(id uuid.UUID) *BookingBuilder {
	b.CarID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithWindow(fromHour, toHour int) *BookingBuilder {
	b.Start = Hours(fromHour)
	b.End = Hours(toHour)
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) WithTotalPrice(price int64) *BookingBuilder {
	b.TotalPrice = price
	return b
}
