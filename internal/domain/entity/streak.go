// Package entity contains the core business objects of the loyalty engine.
package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Streak tier names.
const (
	TierRegular  = "Regular"
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// StreakTier is a named bracket of consecutive purchase days and the points
// multiplier it grants.
type StreakTier struct {
	Days       int
	Multiplier decimal.Decimal
	Name       string
}

// MarshalJSON renders the multiplier as a JSON number.
func (t StreakTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Days       int     `json:"days"`
		Multiplier float64 `json:"multiplier"`
		Name       string  `json:"name"`
	}{
		Days:       t.Days,
		Multiplier: t.Multiplier.InexactFloat64(),
		Name:       t.Name,
	})
}

// streakTiers is ordered by strictly increasing Days.
//
//nolint:gochecknoglobals
var streakTiers = [...]StreakTier{
	{Days: 1, Multiplier: decimal.RequireFromString("1.0"), Name: TierRegular},
	{Days: 3, Multiplier: decimal.RequireFromString("1.2"), Name: TierBronze},
	{Days: 5, Multiplier: decimal.RequireFromString("1.5"), Name: TierSilver},
	{Days: 7, Multiplier: decimal.RequireFromString("2.0"), Name: TierGold},
	{Days: 14, Multiplier: decimal.RequireFromString("2.5"), Name: TierPlatinum},
}

// StreakTiers returns a copy of the tier table, lowest threshold first.
func StreakTiers() []StreakTier {
	tiers := make([]StreakTier, len(streakTiers))
	copy(tiers, streakTiers[:])

	return tiers
}

// TierFor returns the highest tier whose threshold is <= days. Zero or
// negative days resolve to the lowest tier.
func TierFor(days int) StreakTier {
	current := streakTiers[0]
	for _, tier := range streakTiers {
		if tier.Days <= days {
			current = tier
		}
	}

	return current
}

// NextTier returns the lowest tier whose threshold is above days, if any.
func NextTier(days int) (StreakTier, bool) {
	for _, tier := range streakTiers {
		if tier.Days > days {
			return tier, true
		}
	}

	return StreakTier{}, false
}

// IsTierThreshold reports whether days lands exactly on a tier threshold.
func IsTierThreshold(days int) bool {
	for _, tier := range streakTiers {
		if tier.Days == days {
			return true
		}
	}

	return false
}

// StreakState is the persisted streak: consecutive purchase days and the
// calendar day of the last purchase (nil when the user never purchased).
type StreakState struct {
	ConsecutiveDays  int        `json:"consecutive_days"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

// StreakUpdate is the outcome of advancing the streak for a purchase.
type StreakUpdate struct {
	Days       int             `json:"days"`
	Multiplier decimal.Decimal `json:"-"`
	LevelName  string          `json:"level_name"`
	IsNewLevel bool            `json:"is_new_level"`
}

// StreakStatus is a read-only projection of the current streak.
type StreakStatus struct {
	Days            int         `json:"days"`
	Level           string      `json:"level"`
	Multiplier      float64     `json:"multiplier"`
	NextLevel       *StreakTier `json:"next_level"`
	DaysToNextLevel *int        `json:"days_to_next_level"`
}

// NewStreakStatus projects a day count onto the tier table.
func NewStreakStatus(days int) *StreakStatus {
	tier := TierFor(days)
	status := &StreakStatus{
		Days:       days,
		Level:      tier.Name,
		Multiplier: tier.Multiplier.InexactFloat64(),
	}

	if next, ok := NextTier(days); ok {
		remaining := next.Days - days
		status.NextLevel = &next
		status.DaysToNextLevel = &remaining
	}

	return status
}
