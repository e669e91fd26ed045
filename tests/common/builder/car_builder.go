//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"car-rental-engine/internal/domain/car"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID                uuid.UUID
	Attrs             car.Attributes
	BaseRate          int64
	ExtraKm           int64
	Deposit           int64
	ManuallyAvailable bool
	Reserved          []car.ReservedSpan
	MaintenanceSpans  []car.MaintenanceSpan
	TotalBookings     int
	Active            bool
	CreatedAt         time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID: uuid.New(),
		Attrs: car.Attributes{
			Brand:        "Hyundai",
			Model:        "Creta",
			Category:     car.CategorySUV,
			FuelType:     car.FuelPetrol,
			Transmission: car.TransmissionAutomatic,
			Seats:        5,
			City:         "Bengaluru",
			Area:         "Indiranagar",
		},
		BaseRate:          1000,
		ExtraKm:           12,
		Deposit:           5000,
		ManuallyAvailable: true,
		Active:            true,
		CreatedAt:         BaseTime.Add(-30 * 24 * time.Hour),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through the validating constructor.
func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	pricing, err := car.NewPricingProfile(b.BaseRate, b.ExtraKm, b.Deposit)
	if err != nil {
		return nil, err
	}
	return car.NewCar(b.Attrs, pricing, b.CreatedAt)
}

// BuildReconstructed skips validation and keeps spans and counters as given.
func (b *CarBuilder) BuildReconstructed() *car.Car {
	pricing, err := car.NewPricingProfile(b.BaseRate, b.ExtraKm, b.Deposit)
	if err != nil {
		panic(err)
	}
	return car.ReconstructCar(
		b.ID,
		b.Attrs,
		pricing,
		car.NewAvailabilityRecord(b.ManuallyAvailable, b.Reserved, b.MaintenanceSpans),
		b.TotalBookings,
		0,
		b.Active,
		b.CreatedAt,
	)
}

func (b *CarBuilder) WithID(id uuid.UUID) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithBaseRate(rate int64) *CarBuilder {
	b.BaseRate = rate
	return b
}

func (b *CarBuilder) WithExtraKmCharge(charge int64) *CarBuilder {
	b.ExtraKm = charge
	return b
}

func (b *CarBuilder) WithCity(city string) *CarBuilder {
	b.Attrs.City = city
	return b
}

func (b *CarBuilder) WithBrandModel(brand, model string) *CarBuilder {
	b.Attrs.Brand = brand
	b.Attrs.Model = model
	return b
}

func (b *CarBuilder) WithManuallyAvailable(available bool) *CarBuilder {
	b.ManuallyAvailable = available
	return b
}

func (b *CarBuilder) WithReserved(t *testing.T, fromHour, toHour int, bookingID uuid.UUID) *CarBuilder {
	t.Helper()
	b.Reserved = append(b.Reserved, Span(t, fromHour, toHour, bookingID))
	return b
}

func (b *CarBuilder) WithMaintenance(t *testing.T, fromHour, toHour int, reason string) *CarBuilder {
	t.Helper()
	b.MaintenanceSpans = append(b.MaintenanceSpans, Maintenance(t, fromHour, toHour, reason))
	return b
}

func (b *CarBuilder) Inactive() *CarBuilder {
	b.Active = false
	return b
}
