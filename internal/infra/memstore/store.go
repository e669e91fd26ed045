// Package memstore keeps cars and bookings in process memory. Reservations on one car
// are serialized by that car's mutex, which a unit of work holds until it finishes.
package memstore

import (
	"context"
	"sync"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	cars     map[uuid.UUID]*car.Car
	bookings map[uuid.UUID]*booking.Booking

	locksMu  sync.Mutex
	carLocks map[uuid.UUID]*sync.Mutex
}

func New() *Store {
	return &Store{
		cars:     make(map[uuid.UUID]*car.Car),
		bookings: make(map[uuid.UUID]*booking.Booking),
		carLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Seed stores cars as-is; used by tests and local runs.
func (s *Store) Seed(cars ...*car.Car) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cars {
		s.cars[c.ID()] = c.Clone()
	}
}

func (s *Store) carLock(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.carLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.carLocks[id] = l
	}
	return l
}

// Within runs fn with undo-on-error semantics. Car locks taken by fn are held until
// it returns, so two units of work touching the same car never interleave.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s, held: make(map[uuid.UUID]*sync.Mutex)}
	defer tx.unlockAll()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// WithinRetry has nothing to retry in memory.
func (s *Store) WithinRetry(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Within(ctx, fn)
}

type memTx struct {
	store *Store
	held  map[uuid.UUID]*sync.Mutex
	undo  []func()
}

func (t *memTx) Cars() shared.CarRepository                 { return &carRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }
func (t *memTx) Bookings() shared.BookingRepository         { return &bookingRepo{tx: t} }

func (t *memTx) lock(carID uuid.UUID) {
	if _, ok := t.held[carID]; ok {
		return
	}
	l := t.store.carLock(carID)
	l.Lock()
	t.held[carID] = l
}

func (t *memTx) unlockAll() {
	for id, l := range t.held {
		l.Unlock()
		delete(t.held, id)
	}
}

func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// mutateCar applies fn to the stored car under the store lock and records an undo step.
// Callers must hold the car lock.
func (t *memTx) mutateCar(carID uuid.UUID, fn func(c *car.Car) error) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.cars[carID]
	if !ok {
		return errCarNotFound()
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.cars[carID] = next
	t.undo = append(t.undo, func() { s.cars[carID] = current })
	return nil
}
