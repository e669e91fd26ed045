package converter

import (
	"time"

	"car-rental-engine/internal/domain/car"

	"github.com/google/uuid"
)

// CarColumns must stay in the order of CarRow.ScanTargets.
var CarColumns = []string{
	"c.id", "c.brand", "c.model", "c.category", "c.fuel_type", "c.transmission", "c.seats",
	"c.city", "c.area", "c.featured", "c.is_active", "c.manually_available",
	"c.base_rate_per_day", "c.extra_km_charge", "c.security_deposit",
	"c.total_bookings", "c.total_revenue", "c.created_at",
}

type CarRow struct {
	ID                uuid.UUID
	Brand             string
	Model             string
	Category          string
	FuelType          string
	Transmission      string
	Seats             int32
	City              string
	Area              string
	Featured          bool
	IsActive          bool
	ManuallyAvailable bool
	BaseRatePerDay    int64
	ExtraKmCharge     int64
	SecurityDeposit   int64
	TotalBookings     int32
	TotalRevenue      int64
	CreatedAt         time.Time
}

func (r *CarRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Brand, &r.Model, &r.Category, &r.FuelType, &r.Transmission, &r.Seats,
		&r.City, &r.Area, &r.Featured, &r.IsActive, &r.ManuallyAvailable,
		&r.BaseRatePerDay, &r.ExtraKmCharge, &r.SecurityDeposit,
		&r.TotalBookings, &r.TotalRevenue, &r.CreatedAt,
	}
}

func CarToDomain(row CarRow, spans Spans) (*car.Car, error) {
	profile, err := car.NewPricingProfile(row.BaseRatePerDay, row.ExtraKmCharge, row.SecurityDeposit)
	if err != nil {
		return nil, err
	}
	attrs := car.Attributes{
		Brand:        row.Brand,
		Model:        row.Model,
		Category:     car.Category(row.Category),
		FuelType:     car.FuelType(row.FuelType),
		Transmission: car.Transmission(row.Transmission),
		Seats:        int(row.Seats),
		City:         row.City,
		Area:         row.Area,
		Featured:     row.Featured,
	}
	record := car.NewAvailabilityRecord(row.ManuallyAvailable, spans.Reserved[row.ID], spans.Maintenance[row.ID])
	return car.ReconstructCar(row.ID, attrs, profile, record, int(row.TotalBookings), row.TotalRevenue, row.IsActive, row.CreatedAt), nil
}

// CarToInsertValues follows the cars insert column order used by the car repository.
func CarToInsertValues(c *car.Car) []any {
	attrs := c.Attributes()
	return []any{
		c.ID(), attrs.Brand, attrs.Model, string(attrs.Category), string(attrs.FuelType), string(attrs.Transmission),
		attrs.Seats, attrs.City, attrs.Area, attrs.Featured, c.IsActive(), c.Availability().ManuallyAvailable(),
		c.Pricing().BaseRatePerDay(), c.Pricing().ExtraKmCharge(), c.Pricing().SecurityDeposit(),
		c.TotalBookings(), c.TotalRevenue(), c.CreatedAt(), c.CreatedAt(),
	}
}
