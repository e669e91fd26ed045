package pricing

import "math"

// RoundHalfUp rounds to the nearest whole unit, halves going up.
func RoundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// TierCharge is the one rounding policy for a tier amount.
// Base and tax are rounded independently; tax is taken on the rounded base.
func TierCharge(baseRatePerDay int64, multiplier, billingDays, taxRate float64) (base, tax, final int64) {
	base = RoundHalfUp(float64(baseRatePerDay) * multiplier * billingDays)
	tax = RoundHalfUp(float64(base) * taxRate)
	return base, tax, base + tax
}

// IncludedKm never scales below one full day.
func IncludedKm(kmPerDay int, billingDays float64) int64 {
	return RoundHalfUp(float64(kmPerDay) * math.Max(1, billingDays))
}
