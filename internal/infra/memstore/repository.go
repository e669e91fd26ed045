package memstore

import (
	"context"
	"errors"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/infra"

	"github.com/google/uuid"
)

var errNotRemoved = errors.New("nothing to remove")

func errCarNotFound() error {
	return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
}

type carRepo struct{ tx *memTx }

func (r *carRepo) Create(_ context.Context, c *car.Car) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cars[c.ID()]; exists {
		return infra.WrapRepoErr("car already exists", nil, infra.KindDuplicateKey)
	}
	s.cars[c.ID()] = c.Clone()
	id := c.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.cars, id) })
	return nil
}

func (r *carRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*car.Car, error) {
	r.tx.lock(id)

	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cars[id]
	if !ok {
		return nil, errCarNotFound()
	}
	return c.Clone(), nil
}

func (r *carRepo) AddMaintenance(_ context.Context, carID uuid.UUID, span car.MaintenanceSpan) error {
	r.tx.lock(carID)
	return r.tx.mutateCar(carID, func(c *car.Car) error {
		c.ScheduleMaintenance(span)
		return nil
	})
}

func (r *carRepo) RemoveMaintenance(_ context.Context, carID, maintenanceID uuid.UUID) (bool, error) {
	r.tx.lock(carID)
	err := r.tx.mutateCar(carID, func(c *car.Car) error {
		if !c.RemoveMaintenance(maintenanceID) {
			return errNotRemoved
		}
		return nil
	})
	if errors.Is(err, errNotRemoved) {
		return false, nil
	}
	return err == nil, err
}

func (r *carRepo) SetManualAvailability(_ context.Context, carID uuid.UUID, available bool) error {
	r.tx.lock(carID)
	return r.tx.mutateCar(carID, func(c *car.Car) error {
		c.SetManualAvailability(available)
		return nil
	})
}

func (r *carRepo) AddRevenue(_ context.Context, carID uuid.UUID, amount int64) error {
	r.tx.lock(carID)
	return r.tx.mutateCar(carID, func(c *car.Car) error {
		c.RecordRevenue(amount)
		return nil
	})
}

type reservationRepo struct{ tx *memTx }

// Reserve checks and appends under the car lock, so the strict overlap rule holds
// across concurrent units of work.
func (r *reservationRepo) Reserve(_ context.Context, carID uuid.UUID, span car.ReservedSpan) error {
	r.tx.lock(carID)
	err := r.tx.mutateCar(carID, func(c *car.Car) error {
		return c.Reserve(span)
	})
	if errors.Is(err, car.ErrSpanConflict) {
		return infra.WrapRepoErr("reservation overlaps an existing span", err, infra.KindConflict)
	}
	return err
}

func (r *reservationRepo) Release(_ context.Context, carID, bookingID uuid.UUID) (bool, error) {
	r.tx.lock(carID)
	err := r.tx.mutateCar(carID, func(c *car.Car) error {
		if !c.Release(bookingID) {
			return errNotRemoved
		}
		return nil
	})
	if errors.Is(err, errNotRemoved) || infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return err == nil, err
}

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[b.CarID()]; !ok {
		return infra.WrapRepoErr("booking references unknown car", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range s.bookings {
		if existing.ID() == b.ID() || existing.PaymentReference() == b.PaymentReference() {
			return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
		}
	}
	cp := *b
	s.bookings[b.ID()] = &cp
	id := b.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.bookings, id) })
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *b
	s.bookings[b.ID()] = &cp
	r.tx.undo = append(r.tx.undo, func() { s.bookings[current.ID()] = current })
	return nil
}

func (r *bookingRepo) CompleteFinished(_ context.Context, now time.Time) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, b := range s.bookings {
		next := *b
		if next.Complete(now) != nil {
			continue
		}
		previous := b
		s.bookings[id] = &next
		r.tx.undo = append(r.tx.undo, func() { s.bookings[previous.ID()] = previous })
		n++
	}
	return n, nil
}
