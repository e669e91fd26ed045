package shared

import (
	"context"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/car"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one transaction, no retry. Reservation conflicts must surface to the caller as-is.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinRetry: retries serialization failures and deadlocks; only for idempotent background work
	WithinRetry(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Cars() CarRepository
	Reservations() ReservationRepository
	Bookings() BookingRepository
}

type CarRepository interface {
	Create(ctx context.Context, c *car.Car) error
	// FindForUpdate loads the aggregate and holds the car's write lock until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error)
	AddMaintenance(ctx context.Context, carID uuid.UUID, span car.MaintenanceSpan) error
	RemoveMaintenance(ctx context.Context, carID, maintenanceID uuid.UUID) (bool, error)
	SetManualAvailability(ctx context.Context, carID uuid.UUID, available bool) error
	AddRevenue(ctx context.Context, carID uuid.UUID, amount int64) error
}

type ReservationRepository interface {
	// Reserve re-validates non-overlap at write time and stores the span together with
	// the car's booking counter. A clash is reported as a CONFLICT repository error.
	Reserve(ctx context.Context, carID uuid.UUID, span car.ReservedSpan) error
	Release(ctx context.Context, carID, bookingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
}
