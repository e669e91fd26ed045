package pricing

import (
	"fmt"
	"math"
	"strconv"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
)

type Duration struct {
	Days           int
	RemainingHours float64
	TotalHours     float64
}

func newDuration(totalHours float64) Duration {
	return Duration{
		Days:           int(math.Floor(totalHours / 24)),
		RemainingHours: math.Mod(totalHours, 24),
		TotalHours:     totalHours,
	}
}

func (d Duration) BillingDays() float64 {
	return d.TotalHours / 24
}

// Text renders "3 Days 9 Hours"; hours are omitted when zero.
func (d Duration) Text() string {
	s := strconv.Itoa(d.Days) + " Days"
	if d.RemainingHours > 0 {
		s += fmt.Sprintf(" %d Hours", RoundHalfUp(d.RemainingHours))
	}
	return s
}

func (d Duration) HoursLabel() string {
	return strconv.FormatFloat(d.RemainingHours, 'f', 1, 64)
}

func (d Duration) TotalHoursLabel() string {
	return strconv.FormatFloat(d.TotalHours, 'f', 1, 64)
}

type Tier struct {
	ID              string
	Name            string
	KmPerDay        int
	IncludedKm      int64
	BasePrice       int64
	Tax             int64
	FinalPrice      int64
	ExtraKmCharge   int64
	SecurityDeposit int64
	Recommended     bool
}

type Quote struct {
	Duration Duration
	Tiers    []Tier
}

func (q Quote) Tier(id string) (Tier, bool) {
	for _, t := range q.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultPolicy())
}

func (c *Calculator) Policy() Policy {
	return c.policy
}

// Quote is pure: the same profile and interval always give the same result.
func (c *Calculator) Quote(profile car.PricingProfile, iv interval.Interval) (Quote, error) {
	totalHours, err := iv.DurationHours()
	if err != nil {
		return Quote{}, err
	}
	duration := newDuration(totalHours)
	billingDays := duration.BillingDays()

	extraKm := profile.ExtraKmCharge()
	if extraKm <= 0 {
		extraKm = c.policy.DefaultExtraKmCharge
	}

	tiers := make([]Tier, len(c.policy.Tiers))
	for i, def := range c.policy.Tiers {
		base, tax, final := TierCharge(profile.BaseRatePerDay(), def.Multiplier, billingDays, c.policy.TaxRate)
		tiers[i] = Tier{
			ID:              def.ID,
			Name:            def.Name,
			KmPerDay:        def.KmPerDay,
			IncludedKm:      IncludedKm(def.KmPerDay, billingDays),
			BasePrice:       base,
			Tax:             tax,
			FinalPrice:      final,
			ExtraKmCharge:   extraKm,
			SecurityDeposit: profile.SecurityDeposit(),
			Recommended:     def.Recommended,
		}
	}

	return Quote{Duration: duration, Tiers: tiers}, nil
}
