package repository

import (
	"context"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/converter"
	"car-rental-engine/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO bookings (id, user_id, car_id, start_at, end_at, tier_id, total_price, status, payment_reference, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID(), b.UserID(), b.CarID(), b.Interval().Start(), b.Interval().End(), b.TierID(), b.TotalPrice(),
		b.Status().String(), b.PaymentReference(), b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// FindByID locks the booking row for the rest of the transaction.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(converter.BookingColumns...).
		From("bookings b").
		Where(sq.Eq{"b.id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var row converter.BookingRow
	if err = r.db.QueryRow(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), b.Status().String(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE bookings SET status = $1, updated_at = $3
WHERE status = $2 AND end_at <= $3`,
		booking.StatusCompleted.String(), booking.StatusConfirmed.String(), now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete finished bookings", err)
	}
	return tag.RowsAffected(), nil
}
