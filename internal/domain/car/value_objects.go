package car

import (
	"errors"
	"strings"

	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
)

const MaxMaintenanceReasonLength = 200

var (
	ErrInvalidBaseRate        = errors.New("base rate per day must be positive")
	ErrNegativeCharge         = errors.New("charges cannot be negative")
	ErrEmptyMaintenanceReason = errors.New("maintenance reason is required")
	ErrMaintenanceReasonLong  = errors.New("maintenance reason is too long")
	ErrMissingBookingID       = errors.New("reserved span requires a booking id")
)

// PricingProfile amounts are whole currency units.
type PricingProfile struct {
	baseRatePerDay  int64
	extraKmCharge   int64
	securityDeposit int64
}

func NewPricingProfile(baseRatePerDay, extraKmCharge, securityDeposit int64) (PricingProfile, error) {
	if baseRatePerDay <= 0 {
		return PricingProfile{}, ErrInvalidBaseRate
	}
	if extraKmCharge < 0 || securityDeposit < 0 {
		return PricingProfile{}, ErrNegativeCharge
	}
	return PricingProfile{
		baseRatePerDay:  baseRatePerDay,
		extraKmCharge:   extraKmCharge,
		securityDeposit: securityDeposit,
	}, nil
}

func (p PricingProfile) BaseRatePerDay() int64 {
	return p.baseRatePerDay
}

// ExtraKmCharge returns the stored value; zero means "not set".
func (p PricingProfile) ExtraKmCharge() int64 {
	return p.extraKmCharge
}

func (p PricingProfile) SecurityDeposit() int64 {
	return p.securityDeposit
}

type ReservedSpan struct {
	interval  interval.Interval
	bookingID uuid.UUID
}

func NewReservedSpan(iv interval.Interval, bookingID uuid.UUID) (ReservedSpan, error) {
	if iv.IsZero() {
		return ReservedSpan{}, interval.ErrInvalidRange
	}
	if bookingID == uuid.Nil {
		return ReservedSpan{}, ErrMissingBookingID
	}
	return ReservedSpan{interval: iv, bookingID: bookingID}, nil
}

func (s ReservedSpan) Interval() interval.Interval {
	return s.interval
}

func (s ReservedSpan) BookingID() uuid.UUID {
	return s.bookingID
}

type MaintenanceSpan struct {
	id       uuid.UUID
	interval interval.Interval
	reason   string
}

func NewMaintenanceSpan(iv interval.Interval, reason string) (MaintenanceSpan, error) {
	return newMaintenanceSpan(uuid.New(), iv, reason)
}

func ReconstructMaintenanceSpan(id uuid.UUID, iv interval.Interval, reason string) MaintenanceSpan {
	return MaintenanceSpan{id: id, interval: iv, reason: reason}
}

func newMaintenanceSpan(id uuid.UUID, iv interval.Interval, reason string) (MaintenanceSpan, error) {
	if iv.IsZero() {
		return MaintenanceSpan{}, interval.ErrInvalidRange
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return MaintenanceSpan{}, ErrEmptyMaintenanceReason
	}
	if len([]rune(reason)) > MaxMaintenanceReasonLength {
		return MaintenanceSpan{}, ErrMaintenanceReasonLong
	}
	return MaintenanceSpan{id: id, interval: iv, reason: reason}, nil
}

func (m MaintenanceSpan) ID() uuid.UUID {
	return m.id
}

func (m MaintenanceSpan) Interval() interval.Interval {
	return m.interval
}

func (m MaintenanceSpan) Reason() string {
	return m.reason
}
