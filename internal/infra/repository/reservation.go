package repository

import (
	"context"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/db"

	"github.com/google/uuid"
)

const (
	lockCarSQL = `SELECT id FROM cars WHERE id = $1 FOR UPDATE`

	// Strict overlap: a span that ends exactly when another starts is allowed.
	insertReservationSQL = `
INSERT INTO car_reservations (car_id, booking_id, start_at, end_at)
SELECT $1::uuid, $2::uuid, $3::timestamptz, $4::timestamptz
WHERE NOT EXISTS (
    SELECT 1 FROM car_reservations
    WHERE car_id = $1 AND start_at < $4::timestamptz AND end_at > $3::timestamptz
)`

	bumpBookingsSQL = `UPDATE cars SET total_bookings = total_bookings + 1, updated_at = now() WHERE id = $1`

	deleteReservationSQL = `DELETE FROM car_reservations WHERE car_id = $1 AND booking_id = $2`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// Reserve serializes writers on the car row, re-checks overlap inside the insert and
// bumps the booking counter. The exclusion constraint on car_reservations backs this up.
func (r *ReservationRepository) Reserve(ctx context.Context, carID uuid.UUID, span car.ReservedSpan) error {
	if err := r.lockCar(ctx, carID); err != nil {
		return err
	}

	iv := span.Interval()
	tag, err := r.db.Exec(ctx, insertReservationSQL, carID, span.BookingID(), iv.Start(), iv.End())
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation overlaps an existing span", nil, infra.KindConflict)
	}

	if _, err = r.db.Exec(ctx, bumpBookingsSQL, carID); err != nil {
		return infra.WrapRepoErr("failed to update booking counter", err)
	}
	return nil
}

func (r *ReservationRepository) Release(ctx context.Context, carID, bookingID uuid.UUID) (bool, error) {
	if err := r.lockCar(ctx, carID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}

	tag, err := r.db.Exec(ctx, deleteReservationSQL, carID, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ReservationRepository) lockCar(ctx context.Context, carID uuid.UUID) error {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, lockCarSQL, carID).Scan(&id); err != nil {
		return infra.WrapRepoErr("failed to lock car", err)
	}
	return nil
}
