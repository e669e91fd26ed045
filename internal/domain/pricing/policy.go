package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTaxRate       = 0.05
	DefaultExtraKmCharge = 10
)

var (
	ErrNoTiers           = errors.New("pricing policy needs at least one tier")
	ErrDuplicateTier     = errors.New("duplicate tier id")
	ErrInvalidTier       = errors.New("tier needs an id, positive km per day and positive multiplier")
	ErrInvalidTaxRate    = errors.New("tax rate must be within [0, 1)")
	ErrInvalidKmFallback = errors.New("default extra km charge must be positive")
)

type TierDefinition struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	KmPerDay    int     `toml:"km_per_day"`
	Multiplier  float64 `toml:"multiplier"`
	Recommended bool    `toml:"recommended"`
}

// Policy is shared by every call site that prices a rental.
type Policy struct {
	TaxRate              float64          `toml:"tax_rate"`
	DefaultExtraKmCharge int64            `toml:"default_extra_km_charge"`
	Tiers                []TierDefinition `toml:"tiers"`
}

func DefaultPolicy() Policy {
	return Policy{
		TaxRate:              DefaultTaxRate,
		DefaultExtraKmCharge: DefaultExtraKmCharge,
		Tiers: []TierDefinition{
			{ID: "tier_200", Name: "200 Kms/Day", KmPerDay: 200, Multiplier: 1.0},
			{ID: "tier_400", Name: "400 Kms/Day", KmPerDay: 400, Multiplier: 1.5, Recommended: true},
			{ID: "tier_1000", Name: "1000 Kms/Day", KmPerDay: 1000, Multiplier: 2.25},
		},
	}
}

// LoadPolicy reads a TOML override. An empty path yields DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}
	policy := DefaultPolicy()
	policy.Tiers = nil
	if _, err := toml.DecodeFile(path, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to decode pricing policy %s: %w", path, err)
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

func (p Policy) Validate() error {
	if len(p.Tiers) == 0 {
		return ErrNoTiers
	}
	if p.TaxRate < 0 || p.TaxRate >= 1 || math.IsNaN(p.TaxRate) {
		return ErrInvalidTaxRate
	}
	if p.DefaultExtraKmCharge <= 0 {
		return ErrInvalidKmFallback
	}
	seen := make(map[string]struct{}, len(p.Tiers))
	for _, t := range p.Tiers {
		if t.ID == "" || t.KmPerDay <= 0 || t.Multiplier <= 0 {
			return ErrInvalidTier
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateTier, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

func (p Policy) Tier(id string) (TierDefinition, bool) {
	for _, t := range p.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return TierDefinition{}, false
}
