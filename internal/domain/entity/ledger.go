package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one immutable points transaction. Positive amounts are
// earned points, negative amounts are redemptions. The JSON keys match the
// persisted history format.
type LedgerEntry struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Amount           int       `json:"amount"`
	Description      string    `json:"description"`
	ProductID        string    `json:"productId,omitempty"`
	ProductName      string    `json:"productName,omitempty"`
	StreakBonus      *int      `json:"streakBonus,omitempty"`
	StreakMultiplier *float64  `json:"streakMultiplier,omitempty"`
	StreakLevel      string    `json:"streakLevel,omitempty"`
}

// IsRedemption reports whether the entry spent points.
func (e *LedgerEntry) IsRedemption() bool {
	return e.Amount < 0
}

// ProductRef identifies the product a purchase was made for.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StreakBonus describes the streak part of an award.
type StreakBonus struct {
	Bonus      int
	Multiplier decimal.Decimal
	Level      string
}

// EntryMetadata is attached to a credited ledger entry.
type EntryMetadata struct {
	Description string
	Product     *ProductRef
	Streak      *StreakBonus
}

// AwardResult is returned to the caller after points were awarded for a purchase.
type AwardResult struct {
	PointsEarned     int     `json:"points_earned"`
	NewTotal         int     `json:"new_total"`
	StreakDays       int     `json:"streak_days"`
	StreakLevel      string  `json:"streak_level"`
	StreakMultiplier float64 `json:"streak_multiplier"`
	BasePoints       int     `json:"base_points"`
	BonusPoints      int     `json:"bonus_points"`
	IsNewStreakLevel bool    `json:"is_new_streak_level"`
}

// PurchasePreview projects what a purchase would earn without advancing the streak.
type PurchasePreview struct {
	BasePoints             int     `json:"base_points"`
	BonusPoints            int     `json:"bonus_points"`
	PotentialPoints        int     `json:"potential_points"`
	StreakLevel            string  `json:"streak_level"`
	StreakMultiplier       float64 `json:"streak_multiplier"`
	CurrentBalance         int     `json:"current_balance"`
	BalanceAfterPurchase   int     `json:"balance_after_purchase"`
	PercentTowardsFreeItem int     `json:"percent_towards_free_item"`
}

// LedgerSnapshot is a full export of the persisted loyalty state.
type LedgerSnapshot struct {
	Balance          int            `json:"balance"`
	History          []*LedgerEntry `json:"history"`
	StreakDays       int            `json:"streak_days"`
	LastPurchaseDate *time.Time     `json:"last_purchase_date,omitempty"`
	ExportedAt       time.Time      `json:"exported_at"`
}
