package readmodel

import (
	"time"

	"car-rental-engine/internal/domain/car"

	"github.com/google/uuid"
)

type PricingRM struct {
	PerDay          int64 `json:"per_day"`
	ExtraKmCharge   int64 `json:"extra_km_charge"`
	SecurityDeposit int64 `json:"security_deposit"`
}

type MaintenanceRM struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
}

type CarRM struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	Model             string          `json:"model"`
	Category          string          `json:"category"`
	FuelType          string          `json:"fuel_type"`
	Transmission      string          `json:"transmission"`
	Seats             int             `json:"seats"`
	City              string          `json:"city"`
	Area              string          `json:"area"`
	Featured          bool            `json:"featured"`
	IsActive          bool            `json:"is_active"`
	ManuallyAvailable bool            `json:"manually_available"`
	Pricing           PricingRM       `json:"pricing"`
	Maintenance       []MaintenanceRM `json:"maintenance"`
	TotalBookings     int             `json:"total_bookings"`
	TotalRevenue      int64           `json:"total_revenue"`
	CreatedAt         time.Time       `json:"created_at"`
}

func CarFromDomain(c *car.Car) *CarRM {
	attrs := c.Attributes()
	avail := c.Availability()

	maintenance := make([]MaintenanceRM, 0, len(avail.Maintenance()))
	for _, m := range avail.Maintenance() {
		maintenance = append(maintenance, MaintenanceRM{
			ID:        m.ID(),
			StartDate: m.Interval().Start(),
			EndDate:   m.Interval().End(),
			Reason:    m.Reason(),
		})
	}

	return &CarRM{
		ID:                c.ID(),
		Name:              c.Name(),
		Brand:             attrs.Brand,
		Model:             attrs.Model,
		Category:          string(attrs.Category),
		FuelType:          string(attrs.FuelType),
		Transmission:      string(attrs.Transmission),
		Seats:             attrs.Seats,
		City:              attrs.City,
		Area:              attrs.Area,
		Featured:          attrs.Featured,
		IsActive:          c.IsActive(),
		ManuallyAvailable: avail.ManuallyAvailable(),
		Pricing: PricingRM{
			PerDay:          c.Pricing().BaseRatePerDay(),
			ExtraKmCharge:   c.Pricing().ExtraKmCharge(),
			SecurityDeposit: c.Pricing().SecurityDeposit(),
		},
		Maintenance:   maintenance,
		TotalBookings: c.TotalBookings(),
		TotalRevenue:  c.TotalRevenue(),
		CreatedAt:     c.CreatedAt(),
	}
}
