package car

import (
	"errors"
	"strings"
	"time"

	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
)

const (
	MinSeats = 2
	MaxSeats = 12
)

var (
	ErrEmptyBrand          = errors.New("brand is required")
	ErrEmptyModel          = errors.New("model is required")
	ErrEmptyCity           = errors.New("city is required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidFuelType     = errors.New("invalid fuel type")
	ErrInvalidTransmission = errors.New("invalid transmission")
	ErrInvalidSeats        = errors.New("seats out of range")
)

type Attributes struct {
	Brand        string
	Model        string
	Category     Category
	FuelType     FuelType
	Transmission Transmission
	Seats        int
	City         string
	Area         string
	Featured     bool
}

func (a Attributes) normalize() (Attributes, error) {
	a.Brand = strings.TrimSpace(a.Brand)
	a.Model = strings.TrimSpace(a.Model)
	a.City = strings.TrimSpace(a.City)
	a.Area = strings.TrimSpace(a.Area)

	switch {
	case a.Brand == "":
		return a, ErrEmptyBrand
	case a.Model == "":
		return a, ErrEmptyModel
	case a.City == "":
		return a, ErrEmptyCity
	case !a.Category.IsValid():
		return a, ErrInvalidCategory
	case !a.FuelType.IsValid():
		return a, ErrInvalidFuelType
	case !a.Transmission.IsValid():
		return a, ErrInvalidTransmission
	case a.Seats < MinSeats || a.Seats > MaxSeats:
		return a, ErrInvalidSeats
	}
	return a, nil
}

type Car struct {
	id            uuid.UUID
	attrs         Attributes
	pricing       PricingProfile
	availability  AvailabilityRecord
	totalBookings int
	totalRevenue  int64
	active        bool
	createdAt     time.Time
}

func NewCar(attrs Attributes, pricing PricingProfile, now time.Time) (*Car, error) {
	normalized, err := attrs.normalize()
	if err != nil {
		return nil, err
	}
	if pricing.baseRatePerDay <= 0 {
		return nil, ErrInvalidBaseRate
	}
	return &Car{
		id:           uuid.New(),
		attrs:        normalized,
		pricing:      pricing,
		availability: NewAvailabilityRecord(true, nil, nil),
		active:       true,
		createdAt:    now,
	}, nil
}

func ReconstructCar(
	id uuid.UUID,
	attrs Attributes,
	pricing PricingProfile,
	availability AvailabilityRecord,
	totalBookings int,
	totalRevenue int64,
	active bool,
	createdAt time.Time,
) *Car {
	return &Car{
		id:            id,
		attrs:         attrs,
		pricing:       pricing,
		availability:  availability,
		totalBookings: totalBookings,
		totalRevenue:  totalRevenue,
		active:        active,
		createdAt:     createdAt,
	}
}

func (c *Car) ID() uuid.UUID                    { return c.id }
func (c *Car) Attributes() Attributes           { return c.attrs }
func (c *Car) Pricing() PricingProfile          { return c.pricing }
func (c *Car) Availability() AvailabilityRecord { return c.availability }
func (c *Car) TotalBookings() int               { return c.totalBookings }
func (c *Car) TotalRevenue() int64              { return c.totalRevenue }
func (c *Car) IsActive() bool                   { return c.active }
func (c *Car) CreatedAt() time.Time             { return c.createdAt }

func (c *Car) Name() string {
	return c.attrs.Brand + " " + c.attrs.Model
}

func (c *Car) CheckAvailability(iv interval.Interval) Availability {
	return c.availability.Check(iv)
}

// Reserve appends the span and bumps the booking counter together.
// The car is left untouched on conflict.
func (c *Car) Reserve(span ReservedSpan) error {
	next, err := c.availability.WithReserved(span)
	if err != nil {
		return err
	}
	c.availability = next
	c.totalBookings++
	return nil
}

func (c *Car) Release(bookingID uuid.UUID) bool {
	next, removed := c.availability.WithoutReserved(bookingID)
	if removed {
		c.availability = next
	}
	return removed
}

func (c *Car) ScheduleMaintenance(m MaintenanceSpan) {
	c.availability = c.availability.WithMaintenance(m)
}

func (c *Car) RemoveMaintenance(id uuid.UUID) bool {
	next, removed := c.availability.WithoutMaintenance(id)
	if removed {
		c.availability = next
	}
	return removed
}

func (c *Car) RecordRevenue(amount int64) {
	c.totalRevenue += amount
}

func (c *Car) SetManualAvailability(available bool) {
	c.availability = c.availability.WithManualAvailability(available)
}

// Clone returns an independent copy.
func (c *Car) Clone() *Car {
	cp := *c
	cp.availability = NewAvailabilityRecord(c.availability.manuallyAvailable, c.availability.reserved, c.availability.maintenance)
	return &cp
}
