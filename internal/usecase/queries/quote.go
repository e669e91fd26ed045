package queries

import (
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

type TierView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	KmPerDay        int    `json:"km_per_day"`
	IncludedKm      int64  `json:"included_km"`
	Price           int64  `json:"price"`
	Tax             int64  `json:"tax"`
	FinalPrice      int64  `json:"final_price"`
	ExtraKmCharge   int64  `json:"extra_km_charge"`
	SecurityDeposit int64  `json:"security_deposit"`
	Recommended     bool   `json:"recommended"`
}

type QuoteView struct {
	CarID           uuid.UUID  `json:"car_id"`
	CarName         string     `json:"car_name"`
	DurationDays    int        `json:"duration_days"`
	RemainingHours  float64    `json:"remaining_hours"`
	TotalHours      float64    `json:"total_hours"`
	DurationText    string     `json:"duration_text"`
	HoursLabel      string     `json:"hours_label"`
	TotalHoursLabel string     `json:"total_hours_label"`
	Tiers           []TierView `json:"tiers"`
}

// newQuoteView is the only place a pricing.Quote becomes a response, so the quote
// endpoint and list injection render identical numbers.
func newQuoteView(c *car.Car, q pricing.Quote) *QuoteView {
	tiers := make([]TierView, 0, len(q.Tiers))
	for _, t := range q.Tiers {
		tiers = append(tiers, TierView{
			ID:              t.ID,
			Name:            t.Name,
			KmPerDay:        t.KmPerDay,
			IncludedKm:      t.IncludedKm,
			Price:           t.BasePrice,
			Tax:             t.Tax,
			FinalPrice:      t.FinalPrice,
			ExtraKmCharge:   t.ExtraKmCharge,
			SecurityDeposit: t.SecurityDeposit,
			Recommended:     t.Recommended,
		})
	}
	return &QuoteView{
		CarID:           c.ID(),
		CarName:         c.Name(),
		DurationDays:    q.Duration.Days,
		RemainingHours:  q.Duration.RemainingHours,
		TotalHours:      q.Duration.TotalHours,
		DurationText:    q.Duration.Text(),
		HoursLabel:      q.Duration.HoursLabel(),
		TotalHoursLabel: q.Duration.TotalHoursLabel(),
		Tiers:           tiers,
	}
}
