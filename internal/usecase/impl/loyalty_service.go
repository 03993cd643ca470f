package impl

import (
	"context"
	"fmt"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/points"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
	"loyalty/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type loyaltyService struct {
	ledger    repository.LedgerStore
	streaks   usecase.StreakTracker
	publisher service.EventPublisher
	calc      points.Calculator
	clock     clock.Clock
	logger    *slog.Logger
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	Ledger    repository.LedgerStore
	Streaks   usecase.StreakTracker
	Publisher service.EventPublisher
	Clock     clock.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		ledger:    params.Ledger,
		streaks:   params.Streaks,
		publisher: params.Publisher,
		calc: points.NewCalculator(
			decimal.NewFromFloat(params.Config.Loyalty.PointsRate),
			decimal.NewFromFloat(params.Config.Loyalty.CentsPerPoint),
		),
		clock:  params.Clock,
		logger: params.Logger,
	}
}

// AwardPointsForPurchase advances the streak, then credits round(base * multiplier).
func (s *loyaltyService) AwardPointsForPurchase(ctx context.Context, input *usecase.PurchaseInput) (*entity.AwardResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("purchase is required")
	}
	if input.Amount.IsNegative() {
		return nil, domainerrors.ErrInvalidAmount
	}

	streak := s.streaks.Update(ctx)

	basePoints := s.calc.BasePoints(input.Amount)
	totalPoints := points.ApplyMultiplier(basePoints, streak.Multiplier)
	bonusPoints := totalPoints - basePoints

	meta := entity.EntryMetadata{
		Description: bonusDescription(input.Description, streak),
		Product:     input.Product,
		Streak: &entity.StreakBonus{
			Bonus:      bonusPoints,
			Multiplier: streak.Multiplier,
			Level:      streak.LevelName,
		},
	}

	newTotal, entry, err := s.ledger.Credit(ctx, totalPoints, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to credit points: %w", err)
	}

	if entry != nil {
		s.publish(ctx, &service.LoyaltyEvent{
			Type:       service.EventPointsEarned,
			EntryID:    entry.ID,
			Points:     totalPoints,
			Balance:    newTotal,
			StreakDays: streak.Days,
			StreakTier: streak.LevelName,
		})
	}
	if streak.IsNewLevel {
		s.publish(ctx, &service.LoyaltyEvent{
			Type:       service.EventStreakLevelReached,
			Balance:    newTotal,
			StreakDays: streak.Days,
			StreakTier: streak.LevelName,
		})
	}

	return &entity.AwardResult{
		PointsEarned:     totalPoints,
		NewTotal:         newTotal,
		StreakDays:       streak.Days,
		StreakLevel:      streak.LevelName,
		StreakMultiplier: streak.Multiplier.InexactFloat64(),
		BasePoints:       basePoints,
		BonusPoints:      bonusPoints,
		IsNewStreakLevel: streak.IsNewLevel,
	}, nil
}

// RedeemPoints spends points from the balance.
func (s *loyaltyService) RedeemPoints(ctx context.Context, amount int, description string) (*usecase.RedemptionResult, error) {
	newBalance, entry, err := s.ledger.Debit(ctx, amount, description)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientPoints):
			return nil, domainerrors.ErrInsufficientPoints
		case errors.Is(err, repository.ErrInvalidAmount):
			return nil, domainerrors.ErrInvalidAmount.WithDetails("points must be positive")
		default:
			return nil, fmt.Errorf("failed to debit points: %w", err)
		}
	}

	result := &usecase.RedemptionResult{
		NewBalance: newBalance,
		Points:     amount,
	}

	if entry != nil {
		result.EntryID = entry.ID
		s.publish(ctx, &service.LoyaltyEvent{
			Type:    service.EventPointsRedeemed,
			EntryID: entry.ID,
			Points:  amount,
			Balance: newBalance,
		})
	}

	return result, nil
}

// GetUserPoints returns the current balance
func (s *loyaltyService) GetUserPoints(ctx context.Context) int {
	return s.ledger.GetBalance(ctx)
}

// GetPointsHistory returns the ledger, newest first
func (s *loyaltyService) GetPointsHistory(ctx context.Context) []*entity.LedgerEntry {
	return s.ledger.GetHistory(ctx)
}

// GetCurrentStreak returns the current streak projection
func (s *loyaltyService) GetCurrentStreak(ctx context.Context) *entity.StreakStatus {
	return s.streaks.Current(ctx)
}

// PreviewPurchase projects the award for amount using the current streak tier.
// redeemableWith is the points price of the item the progress bar tracks.
func (s *loyaltyService) PreviewPurchase(ctx context.Context, amount decimal.Decimal, redeemableWith int) (*entity.PurchasePreview, error) {
	if amount.IsNegative() {
		return nil, domainerrors.ErrInvalidAmount
	}

	status := s.streaks.Current(ctx)
	multiplier := entity.TierFor(status.Days).Multiplier

	basePoints := s.calc.BasePoints(amount)
	potential := points.ApplyMultiplier(basePoints, multiplier)
	balance := s.ledger.GetBalance(ctx)

	return &entity.PurchasePreview{
		BasePoints:             basePoints,
		BonusPoints:            potential - basePoints,
		PotentialPoints:        potential,
		StreakLevel:            status.Level,
		StreakMultiplier:       status.Multiplier,
		CurrentBalance:         balance,
		BalanceAfterPurchase:   balance + potential,
		PercentTowardsFreeItem: points.PercentOf(balance+potential, redeemableWith),
	}, nil
}

// QuoteRedemption prices an item in points against the current balance
func (s *loyaltyService) QuoteRedemption(ctx context.Context, itemPrice decimal.Decimal) (*usecase.RedemptionQuote, error) {
	if itemPrice.IsNegative() {
		return nil, domainerrors.ErrInvalidAmount
	}

	needed := s.calc.PointsNeeded(itemPrice)
	balance := s.ledger.GetBalance(ctx)

	return &usecase.RedemptionQuote{
		ItemPrice:    itemPrice,
		PointsNeeded: needed,
		Balance:      balance,
		CanRedeem:    balance >= needed,
		Formatted:    points.Format(needed),
	}, nil
}

func (s *loyaltyService) ComputeBasePoints(price decimal.Decimal) int {
	return s.calc.BasePoints(price)
}

func (s *loyaltyService) PointsNeededForRedemption(itemPrice decimal.Decimal) int {
	return s.calc.PointsNeeded(itemPrice)
}

func (s *loyaltyService) CanRedeem(balance int, itemPrice decimal.Decimal) bool {
	return s.calc.CanRedeem(balance, itemPrice)
}

func (s *loyaltyService) FormatPoints(value int) string {
	return points.Format(value)
}

// publish is best effort: the ledger is already committed.
func (s *loyaltyService) publish(ctx context.Context, event *service.LoyaltyEvent) {
	event.OccurredAt = s.clock.Now().UTC()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.Channel = deliverycontext.GetChannel(ctx)

	if err := s.publisher.PublishLoyaltyEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish loyalty event",
			slog.String("type", event.Type),
			slog.String("entry_id", event.EntryID),
			slog.Any("error", err),
		)
	}
}

// bonusDescription appends the streak bonus note when the multiplier exceeds 1.
func bonusDescription(description string, streak *entity.StreakUpdate) string {
	if !streak.Multiplier.GreaterThan(decimal.NewFromInt(1)) {
		return description
	}

	return fmt.Sprintf("%s (%s streak: %sx bonus)", description, streak.LevelName, streak.Multiplier.String())
}
