package converter

import (
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SpanRow struct {
	Start time.Time
	End   time.Time
}

// BookingColumns must stay in the order of BookingRow.ScanTargets.
var BookingColumns = []string{
	"b.id", "b.user_id", "b.car_id", "b.start_at", "b.end_at", "b.tier_id", "b.total_price",
	"b.status", "b.payment_reference", "b.created_at", "b.updated_at",
}

type BookingRow struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CarID            uuid.UUID
	StartAt          time.Time
	EndAt            time.Time
	TierID           string
	TotalPrice       int64
	Status           string
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r *BookingRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.UserID, &r.CarID, &r.StartAt, &r.EndAt, &r.TierID, &r.TotalPrice,
		&r.Status, &r.PaymentReference, &r.CreatedAt, &r.UpdatedAt,
	}
}

func BookingToDomain(row BookingRow) (*booking.Booking, error) {
	iv, err := interval.New(row.StartAt, row.EndAt)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID, row.UserID, row.CarID, iv, row.TierID, row.TotalPrice,
		booking.Status(row.Status), row.PaymentReference, row.CreatedAt, row.UpdatedAt,
	), nil
}

func BookingToRM(row BookingRow, carName string) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:               row.ID,
		UserID:           row.UserID,
		CarID:            row.CarID,
		CarName:          carName,
		StartDate:        row.StartAt,
		EndDate:          row.EndAt,
		TierID:           row.TierID,
		TotalPrice:       row.TotalPrice,
		Status:           row.Status,
		PaymentReference: row.PaymentReference,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func BookingFromDomain(b *booking.Booking, carName string) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:               b.ID(),
		UserID:           b.UserID(),
		CarID:            b.CarID(),
		CarName:          carName,
		StartDate:        b.Interval().Start(),
		EndDate:          b.Interval().End(),
		TierID:           b.TierID(),
		TotalPrice:       b.TotalPrice(),
		Status:           b.Status().String(),
		PaymentReference: b.PaymentReference(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}
