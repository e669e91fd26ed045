package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/revenue"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/infra/converter"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Reads take only the store lock, so they may observe a unit of work that is still running.

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*car.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cars[id]
	if !ok {
		return nil, errCarNotFound()
	}
	return c.Clone(), nil
}

func (s *Store) Search(_ context.Context, f queries.CarFilter) ([]*car.Car, error) {
	s.mu.RLock()
	out := make([]*car.Car, 0, len(s.cars))
	for _, c := range s.cars {
		if c.IsActive() && matches(c, f) {
			out = append(out, c.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *car.Car) int {
		switch f.Sort {
		case queries.SortOldest:
			return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), compareIDs(a, b))
		case queries.SortPriceAsc:
			return cmp.Or(cmp.Compare(a.Pricing().BaseRatePerDay(), b.Pricing().BaseRatePerDay()),
				b.CreatedAt().Compare(a.CreatedAt()), compareIDs(a, b))
		case queries.SortPriceDesc:
			return cmp.Or(cmp.Compare(b.Pricing().BaseRatePerDay(), a.Pricing().BaseRatePerDay()),
				b.CreatedAt().Compare(a.CreatedAt()), compareIDs(a, b))
		default:
			return cmp.Or(b.CreatedAt().Compare(a.CreatedAt()), compareIDs(a, b))
		}
	})
	return out, nil
}

func compareIDs(a, b *car.Car) int {
	return strings.Compare(a.ID().String(), b.ID().String())
}

func matches(c *car.Car, f queries.CarFilter) bool {
	a := c.Attributes()
	rate := c.Pricing().BaseRatePerDay()
	switch {
	case f.City != "" && !containsFold(a.City, f.City):
		return false
	case f.Category != "" && !strings.EqualFold(string(a.Category), f.Category):
		return false
	case f.Transmission != "" && !strings.EqualFold(string(a.Transmission), f.Transmission):
		return false
	case f.FuelType != "" && !strings.EqualFold(string(a.FuelType), f.FuelType):
		return false
	case f.MinPrice != nil && rate < *f.MinPrice:
		return false
	case f.MaxPrice != nil && rate > *f.MaxPrice:
		return false
	case f.MinSeats != nil && a.Seats < *f.MinSeats:
		return false
	case f.Featured != nil && a.Featured != *f.Featured:
		return false
	}
	if f.Search != "" {
		return containsFold(a.Brand, f.Search) || containsFold(a.Model, f.Search) ||
			containsFold(string(a.Category), f.Search) || containsFold(a.City, f.Search)
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (s *Store) Cities(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	cities := make([]string, 0)
	for _, c := range s.cars {
		if !c.IsActive() || !c.Availability().ManuallyAvailable() {
			continue
		}
		city := c.Attributes().City
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	slices.Sort(cities)
	return cities, nil
}

// BookingReads adapts the store to the booking and report read ports, whose FindByID
// differs from the car one.
type BookingReads struct {
	store *Store
}

func (s *Store) BookingReads() *BookingReads {
	return &BookingReads{store: s}
}

func (r *BookingReads) FindByID(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.bookingView(b), nil
}

func (r *BookingReads) ListByUser(_ context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return r.collect(func(b *booking.Booking) bool { return b.UserID() == userID }, 0), nil
}

func (r *BookingReads) RecentBookings(_ context.Context, start, end time.Time, limit int) ([]*readmodel.BookingRM, error) {
	return r.collect(func(b *booking.Booking) bool {
		return !b.CreatedAt().Before(start) && !b.CreatedAt().After(end)
	}, limit), nil
}

func (r *BookingReads) RevenueEntries(_ context.Context, start, end time.Time) ([]revenue.Entry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]revenue.Entry, 0)
	for _, b := range s.bookings {
		if !b.Status().CountsAsRevenue() || b.CreatedAt().Before(start) || b.CreatedAt().After(end) {
			continue
		}
		entries = append(entries, revenue.Entry{CreatedAt: b.CreatedAt(), TotalPrice: b.TotalPrice(), Counts: true})
	}
	slices.SortFunc(entries, func(a, b revenue.Entry) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return entries, nil
}

func (r *BookingReads) CountCustomers(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[uuid.UUID]struct{})
	for _, b := range s.bookings {
		users[b.UserID()] = struct{}{}
	}
	return int64(len(users)), nil
}

func (r *BookingReads) CountCars(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.cars)), nil
}

func (r *BookingReads) CountActiveBookings(_ context.Context, now time.Time) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, b := range s.bookings {
		if b.Status() == booking.StatusConfirmed && b.Interval().End().After(now) {
			n++
		}
	}
	return n, nil
}

// collect returns matching bookings newest first; limit <= 0 means all.
func (r *BookingReads) collect(keep func(b *booking.Booking) bool, limit int) []*readmodel.BookingRM {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	picked := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if keep(b) {
			picked = append(picked, b)
		}
	}
	slices.SortFunc(picked, func(a, b *booking.Booking) int {
		return cmp.Or(b.CreatedAt().Compare(a.CreatedAt()), strings.Compare(a.ID().String(), b.ID().String()))
	})
	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}

	out := make([]*readmodel.BookingRM, 0, len(picked))
	for _, b := range picked {
		out = append(out, s.bookingView(b))
	}
	return out
}

// bookingView requires s.mu held.
func (s *Store) bookingView(b *booking.Booking) *readmodel.BookingRM {
	var name string
	if c, ok := s.cars[b.CarID()]; ok {
		name = c.Name()
	}
	return converter.BookingFromDomain(b, name)
}
