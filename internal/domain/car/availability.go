package car

import (
	"errors"

	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
)

var ErrSpanConflict = errors.New("requested interval overlaps an existing reservation")

// AvailabilityRecord holds the booked and maintenance windows of one car.
// Reserved spans are pairwise non-overlapping under the strict rule.
type AvailabilityRecord struct {
	manuallyAvailable bool
	reserved          []ReservedSpan
	maintenance       []MaintenanceSpan
}

func NewAvailabilityRecord(manuallyAvailable bool, reserved []ReservedSpan, maintenance []MaintenanceSpan) AvailabilityRecord {
	return AvailabilityRecord{
		manuallyAvailable: manuallyAvailable,
		reserved:          append([]ReservedSpan(nil), reserved...),
		maintenance:       append([]MaintenanceSpan(nil), maintenance...),
	}
}

func (r AvailabilityRecord) ManuallyAvailable() bool {
	return r.manuallyAvailable
}

func (r AvailabilityRecord) Reserved() []ReservedSpan {
	return append([]ReservedSpan(nil), r.reserved...)
}

func (r AvailabilityRecord) Maintenance() []MaintenanceSpan {
	return append([]MaintenanceSpan(nil), r.maintenance...)
}

type Availability struct {
	Available bool
	Reason    Reason
}

// Check applies the inclusive rule in priority order:
// booked, maintenance, manually disabled. Only the first reason is reported.
func (r AvailabilityRecord) Check(iv interval.Interval) Availability {
	for _, s := range r.reserved {
		if iv.OverlapsInclusive(s.interval) {
			return Availability{Reason: ReasonBooked}
		}
	}
	for _, m := range r.maintenance {
		if iv.OverlapsInclusive(m.interval) {
			return Availability{Reason: ReasonMaintenance}
		}
	}
	if !r.manuallyAvailable {
		return Availability{Reason: ReasonManuallyDisabled}
	}
	return Availability{Available: true}
}

// ConflictsWith uses the strict rule; this is the reservation-time test.
func (r AvailabilityRecord) ConflictsWith(iv interval.Interval) bool {
	for _, s := range r.reserved {
		if iv.Overlaps(s.interval) {
			return true
		}
	}
	return false
}

func (r AvailabilityRecord) WithReserved(span ReservedSpan) (AvailabilityRecord, error) {
	if r.ConflictsWith(span.interval) {
		return r, ErrSpanConflict
	}
	next := NewAvailabilityRecord(r.manuallyAvailable, r.reserved, r.maintenance)
	next.reserved = append(next.reserved, span)
	return next, nil
}

// WithoutReserved drops the span owned by bookingID. The bool is false when none matched.
func (r AvailabilityRecord) WithoutReserved(bookingID uuid.UUID) (AvailabilityRecord, bool) {
	kept := make([]ReservedSpan, 0, len(r.reserved))
	removed := false
	for _, s := range r.reserved {
		if s.bookingID == bookingID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	return AvailabilityRecord{
		manuallyAvailable: r.manuallyAvailable,
		reserved:          kept,
		maintenance:       append([]MaintenanceSpan(nil), r.maintenance...),
	}, removed
}

func (r AvailabilityRecord) WithMaintenance(m MaintenanceSpan) AvailabilityRecord {
	next := NewAvailabilityRecord(r.manuallyAvailable, r.reserved, r.maintenance)
	next.maintenance = append(next.maintenance, m)
	return next
}

func (r AvailabilityRecord) WithoutMaintenance(id uuid.UUID) (AvailabilityRecord, bool) {
	kept := make([]MaintenanceSpan, 0, len(r.maintenance))
	removed := false
	for _, m := range r.maintenance {
		if m.id == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	return AvailabilityRecord{
		manuallyAvailable: r.manuallyAvailable,
		reserved:          append([]ReservedSpan(nil), r.reserved...),
		maintenance:       kept,
	}, removed
}

func (r AvailabilityRecord) WithManualAvailability(available bool) AvailabilityRecord {
	next := NewAvailabilityRecord(available, r.reserved, r.maintenance)
	return next
}

// CheckBatch is the bulk form of Check. Results are index-aligned with cars.
func CheckBatch(cars []*Car, iv interval.Interval) []Availability {
	out := make([]Availability, len(cars))
	for i, c := range cars {
		out[i] = c.availability.Check(iv)
	}
	return out
}

// FilterAvailable keeps the cars whose Check reports available, preserving order.
func FilterAvailable(cars []*Car, iv interval.Interval) []*Car {
	results := CheckBatch(cars, iv)
	kept := make([]*Car, 0, len(cars))
	for i, res := range results {
		if res.Available {
			kept = append(kept, cars[i])
		}
	}
	return kept
}
