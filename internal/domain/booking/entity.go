package booking

import (
	"errors"
	"strings"
	"time"

	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
)

const MaxPaymentReferenceLength = 128

var (
	ErrMissingUser             = errors.New("booking requires a user")
	ErrMissingCar              = errors.New("booking requires a car")
	ErrMissingTier             = errors.New("booking requires a pricing tier")
	ErrNegativePrice           = errors.New("total price cannot be negative")
	ErrMissingPaymentReference = errors.New("payment reference is required")
	ErrPaymentReferenceTooLong = errors.New("payment reference is too long")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	id               uuid.UUID
	userID           uuid.UUID
	carID            uuid.UUID
	interval         interval.Interval
	tierID           string
	totalPrice       int64
	status           Status
	paymentReference string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewConfirmedBooking records a paid booking. The car's reserved span is committed separately.
func NewConfirmedBooking(
	userID, carID uuid.UUID,
	iv interval.Interval,
	tierID string,
	totalPrice int64,
	paymentReference string,
	now time.Time,
) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if carID == uuid.Nil {
		return nil, ErrMissingCar
	}
	if iv.IsZero() {
		return nil, interval.ErrInvalidRange
	}
	tierID = strings.TrimSpace(tierID)
	if tierID == "" {
		return nil, ErrMissingTier
	}
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}
	paymentReference = strings.TrimSpace(paymentReference)
	if paymentReference == "" {
		return nil, ErrMissingPaymentReference
	}
	if len(paymentReference) > MaxPaymentReferenceLength {
		return nil, ErrPaymentReferenceTooLong
	}

	return &Booking{
		id:               uuid.New(),
		userID:           userID,
		carID:            carID,
		interval:         iv,
		tierID:           tierID,
		totalPrice:       totalPrice,
		status:           StatusConfirmed,
		paymentReference: paymentReference,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructBooking(
	id, userID, carID uuid.UUID,
	iv interval.Interval,
	tierID string,
	totalPrice int64,
	status Status,
	paymentReference string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		userID:           userID,
		carID:            carID,
		interval:         iv,
		tierID:           tierID,
		totalPrice:       totalPrice,
		status:           status,
		paymentReference: paymentReference,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) CarID() uuid.UUID            { return b.carID }
func (b *Booking) Interval() interval.Interval { return b.interval }
func (b *Booking) TierID() string              { return b.tierID }
func (b *Booking) TotalPrice() int64           { return b.totalPrice }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) PaymentReference() string    { return b.paymentReference }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Cancel is allowed from pending or confirmed.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidStatusTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// Complete is allowed only once the rental window has ended.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed || now.Before(b.interval.End()) {
		return ErrInvalidStatusTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}
