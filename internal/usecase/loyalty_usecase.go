package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PurchaseInput describes a completed purchase
type PurchaseInput struct {
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description"`
	Product     *entity.ProductRef `json:"product,omitempty"`
}

// RedemptionResult is returned after points were spent
type RedemptionResult struct {
	NewBalance int    `json:"new_balance"`
	Points     int    `json:"points"`
	EntryID    string `json:"entry_id,omitempty"`
}

// RedemptionQuote answers whether an item can be paid for with points
type RedemptionQuote struct {
	ItemPrice    decimal.Decimal `json:"item_price"`
	PointsNeeded int             `json:"points_needed"`
	Balance      int             `json:"balance"`
	CanRedeem    bool            `json:"can_redeem"`
	Formatted    string          `json:"formatted_points_needed"`
}

// LoyaltyUsecase defines the points and streak operations
type LoyaltyUsecase interface {
	// AwardPointsForPurchase advances the streak and credits base plus bonus points
	AwardPointsForPurchase(ctx context.Context, input *PurchaseInput) (*entity.AwardResult, error)

	// RedeemPoints spends points; fails with ErrInsufficientPoints without mutating anything
	RedeemPoints(ctx context.Context, points int, description string) (*RedemptionResult, error)

	// GetUserPoints returns the current balance
	GetUserPoints(ctx context.Context) int

	// GetPointsHistory returns the ledger, newest first
	GetPointsHistory(ctx context.Context) []*entity.LedgerEntry

	// GetCurrentStreak returns the current streak projection
	GetCurrentStreak(ctx context.Context) *entity.StreakStatus

	// PreviewPurchase projects what a purchase would earn without advancing the streak
	PreviewPurchase(ctx context.Context, amount decimal.Decimal, redeemableWith int) (*entity.PurchasePreview, error)

	// QuoteRedemption prices an item in points against the current balance
	QuoteRedemption(ctx context.Context, itemPrice decimal.Decimal) (*RedemptionQuote, error)

	// ComputeBasePoints converts a price to points with the configured rate.
	// An unset or non-positive loyalty.pointsRate means the default of 10;
	// points.ComputeBasePoints takes an explicit rate.
	ComputeBasePoints(price decimal.Decimal) int

	// PointsNeededForRedemption converts an item price to the points it costs
	PointsNeededForRedemption(itemPrice decimal.Decimal) int

	// CanRedeem reports whether balance covers itemPrice
	CanRedeem(balance int, itemPrice decimal.Decimal) bool

	// FormatPoints renders points with thousands separators
	FormatPoints(points int) string
}
