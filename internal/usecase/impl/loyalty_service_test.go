package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	mockRepo "loyalty/internal/mocks/repository"
	mockSvc "loyalty/internal/mocks/service"
	mockUsecase "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var loyaltyTestNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

// loyaltyServiceFixtures holds all test dependencies for loyalty service tests.
type loyaltyServiceFixtures struct {
	service   usecase.LoyaltyUsecase
	ledger    *mockRepo.MockLedgerStore
	streaks   *mockUsecase.MockStreakTracker
	publisher *mockSvc.MockEventPublisher
}

func createTestLoyaltyService(t *testing.T) loyaltyServiceFixtures {
	return createTestLoyaltyServiceWithConfig(t, config.LoyaltyConfig{PointsRate: 10, CentsPerPoint: 5})
}

func createTestLoyaltyServiceWithConfig(t *testing.T, cfg config.LoyaltyConfig) loyaltyServiceFixtures {
	ledger := mockRepo.NewMockLedgerStore(t)
	streaks := mockUsecase.NewMockStreakTracker(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewLoyaltyService(LoyaltyServiceParams{
		Ledger:    ledger,
		Streaks:   streaks,
		Publisher: publisher,
		Clock:     clock.NewFixed(loyaltyTestNow),
		Config:    &config.Config{Loyalty: cfg},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return loyaltyServiceFixtures{
		service:   svc,
		ledger:    ledger,
		streaks:   streaks,
		publisher: publisher,
	}
}

func streakUpdate(days int, isNewLevel bool) *entity.StreakUpdate {
	tier := entity.TierFor(days)

	return &entity.StreakUpdate{
		Days:       days,
		Multiplier: tier.Multiplier,
		LevelName:  tier.Name,
		IsNewLevel: isNewLevel,
	}
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(event *service.LoyaltyEvent) bool {
		return event.Type == eventType
	})
}

func TestLoyaltyService_AwardPointsForPurchase_GoldStreak(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := deliverycontext.NewScope(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		"req-1", deliverycontext.ChannelAPI)

	fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(7, true))

	fx.ledger.EXPECT().
		Credit(ctx, 10, mock.MatchedBy(func(meta entity.EntryMetadata) bool {
			return meta.Description == "Purchase: Latte (Gold streak: 2x bonus)" &&
				meta.Product != nil && meta.Product.ID == "latte" &&
				meta.Streak != nil && meta.Streak.Bonus == 5 && meta.Streak.Level == entity.TierGold
		})).
		Return(110, &entity.LedgerEntry{ID: "entry-1", Amount: 10}, nil)

	var published []*service.LoyaltyEvent
	fx.publisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.AnythingOfType("*service.LoyaltyEvent")).
		Run(func(_ context.Context, event *service.LoyaltyEvent) {
			published = append(published, event)
		}).
		Return(nil).
		Times(2)

	result, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
		Amount:      decimal.RequireFromString("50.00"),
		Description: "Purchase: Latte",
		Product:     &entity.ProductRef{ID: "latte", Name: "Latte"},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.PointsEarned)
	assert.Equal(t, 110, result.NewTotal)
	assert.Equal(t, 5, result.BasePoints)
	assert.Equal(t, 5, result.BonusPoints)
	assert.Equal(t, 7, result.StreakDays)
	assert.Equal(t, entity.TierGold, result.StreakLevel)
	assert.InDelta(t, 2.0, result.StreakMultiplier, 0.0001)
	assert.True(t, result.IsNewStreakLevel)

	require.Len(t, published, 2)
	assert.Equal(t, service.EventPointsEarned, published[0].Type)
	assert.Equal(t, "entry-1", published[0].EntryID)
	assert.Equal(t, 10, published[0].Points)
	assert.Equal(t, 110, published[0].Balance)
	assert.Equal(t, "req-1", published[0].RequestID)
	assert.Equal(t, deliverycontext.ChannelAPI, published[0].Channel)
	assert.Equal(t, loyaltyTestNow, published[0].OccurredAt)
	assert.Equal(t, service.EventStreakLevelReached, published[1].Type)
	assert.Equal(t, entity.TierGold, published[1].StreakTier)
}

func TestLoyaltyService_AwardPointsForPurchase_RegularKeepsDescription(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(2, false))
	fx.ledger.EXPECT().
		Credit(ctx, 1, mock.MatchedBy(func(meta entity.EntryMetadata) bool {
			return meta.Description == "Purchase: Muffin" && meta.Product == nil && meta.Streak.Bonus == 0
		})).
		Return(1, &entity.LedgerEntry{ID: "entry-2", Amount: 1}, nil)
	fx.publisher.EXPECT().PublishLoyaltyEvent(ctx, eventOfType(service.EventPointsEarned)).Return(nil).Once()

	result, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
		Amount:      decimal.RequireFromString("13.60"),
		Description: "Purchase: Muffin",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.PointsEarned)
	assert.Equal(t, 0, result.BonusPoints)
	assert.False(t, result.IsNewStreakLevel)
}

func TestLoyaltyService_AwardPointsForPurchase_CustomRate(t *testing.T) {
	fx := createTestLoyaltyServiceWithConfig(t, config.LoyaltyConfig{PointsRate: 100, CentsPerPoint: 5})
	ctx := context.Background()

	fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(3, true))
	fx.ledger.EXPECT().
		Credit(ctx, 54, mock.MatchedBy(func(meta entity.EntryMetadata) bool {
			return meta.Description == "Purchase (Bronze streak: 1.2x bonus)" && meta.Streak.Bonus == 9
		})).
		Return(54, &entity.LedgerEntry{ID: "entry-3", Amount: 54}, nil)
	fx.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(nil).Times(2)

	result, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
		Amount:      decimal.RequireFromString("45.00"),
		Description: "Purchase",
	})
	require.NoError(t, err)
	assert.Equal(t, 45, result.BasePoints)
	assert.Equal(t, 54, result.PointsEarned)
}

func TestLoyaltyService_AwardPointsForPurchase_InvalidInput(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	_, err := fx.service.AwardPointsForPurchase(ctx, nil)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	_, err = fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
		Amount: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestLoyaltyService_AwardPointsForPurchase_StorageFailures(t *testing.T) {
	t.Run("uncommitted credit publishes nothing", func(t *testing.T) {
		fx := createTestLoyaltyService(t)
		ctx := context.Background()

		fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(2, false))
		fx.ledger.EXPECT().Credit(ctx, 5, mock.Anything).Return(40, nil, nil)

		result, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
			Amount:      decimal.RequireFromString("50"),
			Description: "Purchase",
		})
		require.NoError(t, err)
		assert.Equal(t, 40, result.NewTotal)
		assert.Equal(t, 5, result.PointsEarned)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		fx := createTestLoyaltyService(t)
		ctx := context.Background()

		fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(2, false))
		fx.ledger.EXPECT().Credit(ctx, 5, mock.Anything).Return(45, &entity.LedgerEntry{ID: "entry-4"}, nil)
		fx.publisher.EXPECT().PublishLoyaltyEvent(ctx, mock.Anything).Return(errors.New("broker down"))

		result, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
			Amount:      decimal.RequireFromString("50"),
			Description: "Purchase",
		})
		require.NoError(t, err)
		assert.Equal(t, 45, result.NewTotal)
	})

	t.Run("credit error is wrapped", func(t *testing.T) {
		fx := createTestLoyaltyService(t)
		ctx := context.Background()

		fx.streaks.EXPECT().Update(ctx).Return(streakUpdate(1, true))
		fx.ledger.EXPECT().Credit(ctx, 5, mock.Anything).Return(0, nil, repository.ErrInvalidAmount)

		_, err := fx.service.AwardPointsForPurchase(ctx, &usecase.PurchaseInput{
			Amount:      decimal.RequireFromString("50"),
			Description: "Purchase",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrInvalidAmount)
	})
}

func TestLoyaltyService_RedeemPoints(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().
		Debit(ctx, 150, "Redeemed: Free Espresso Shot").
		Return(20, &entity.LedgerEntry{ID: "entry-5", Amount: -150}, nil)
	fx.publisher.EXPECT().
		PublishLoyaltyEvent(ctx, mock.MatchedBy(func(event *service.LoyaltyEvent) bool {
			return event.Type == service.EventPointsRedeemed &&
				event.EntryID == "entry-5" && event.Points == 150 && event.Balance == 20
		})).
		Return(nil)

	result, err := fx.service.RedeemPoints(ctx, 150, "Redeemed: Free Espresso Shot")
	require.NoError(t, err)
	assert.Equal(t, 20, result.NewBalance)
	assert.Equal(t, 150, result.Points)
	assert.Equal(t, "entry-5", result.EntryID)
}

func TestLoyaltyService_RedeemPoints_Errors(t *testing.T) {
	tests := []struct {
		name     string
		debitErr error
		wantCode string
	}{
		{"insufficient balance", repository.ErrInsufficientPoints, "INSUFFICIENT_POINTS"},
		{"non-positive amount", repository.ErrInvalidAmount, "INVALID_AMOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoyaltyService(t)
			ctx := context.Background()

			fx.ledger.EXPECT().Debit(ctx, 500, "Redeemed").Return(100, nil, tt.debitErr)

			result, err := fx.service.RedeemPoints(ctx, 500, "Redeemed")
			assert.Nil(t, result)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestLoyaltyService_PreviewPurchase(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	fx.streaks.EXPECT().Current(ctx).Return(entity.NewStreakStatus(5))
	fx.ledger.EXPECT().GetBalance(ctx).Return(90)

	preview, err := fx.service.PreviewPurchase(ctx, decimal.RequireFromString("50"), 100)
	require.NoError(t, err)

	assert.Equal(t, 5, preview.BasePoints)
	assert.Equal(t, 8, preview.PotentialPoints)
	assert.Equal(t, 3, preview.BonusPoints)
	assert.Equal(t, entity.TierSilver, preview.StreakLevel)
	assert.InDelta(t, 1.5, preview.StreakMultiplier, 0.0001)
	assert.Equal(t, 90, preview.CurrentBalance)
	assert.Equal(t, 98, preview.BalanceAfterPurchase)
	assert.Equal(t, 98, preview.PercentTowardsFreeItem)
}

func TestLoyaltyService_PreviewPurchase_LapsedStreakAndNoTarget(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	fx.streaks.EXPECT().Current(ctx).Return(entity.NewStreakStatus(0))
	fx.ledger.EXPECT().GetBalance(ctx).Return(0)

	preview, err := fx.service.PreviewPurchase(ctx, decimal.RequireFromString("25"), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, preview.PotentialPoints)
	assert.Equal(t, 0, preview.BonusPoints)
	assert.Equal(t, 0, preview.PercentTowardsFreeItem)

	_, err = fx.service.PreviewPurchase(ctx, decimal.RequireFromString("-5"), 100)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestLoyaltyService_QuoteRedemption(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	fx.ledger.EXPECT().GetBalance(ctx).Return(1000)

	quote, err := fx.service.QuoteRedemption(ctx, decimal.RequireFromString("62.50"))
	require.NoError(t, err)
	assert.Equal(t, 1250, quote.PointsNeeded)
	assert.Equal(t, 1000, quote.Balance)
	assert.False(t, quote.CanRedeem)
	assert.Equal(t, "1,250", quote.Formatted)

	_, err = fx.service.QuoteRedemption(ctx, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestLoyaltyService_ReadThrough(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	history := []*entity.LedgerEntry{{ID: "b"}, {ID: "a"}}
	fx.ledger.EXPECT().GetBalance(ctx).Return(42)
	fx.ledger.EXPECT().GetHistory(ctx).Return(history)
	fx.streaks.EXPECT().Current(ctx).Return(entity.NewStreakStatus(3))

	assert.Equal(t, 42, fx.service.GetUserPoints(ctx))
	assert.Equal(t, history, fx.service.GetPointsHistory(ctx))
	assert.Equal(t, entity.TierBronze, fx.service.GetCurrentStreak(ctx).Level)
}

func TestLoyaltyService_Calculations(t *testing.T) {
	fx := createTestLoyaltyService(t)

	assert.Equal(t, 5, fx.service.ComputeBasePoints(decimal.RequireFromString("50")))
	assert.Equal(t, 100, fx.service.PointsNeededForRedemption(decimal.RequireFromString("5.00")))
	assert.True(t, fx.service.CanRedeem(100, decimal.RequireFromString("5.00")))
	assert.False(t, fx.service.CanRedeem(99, decimal.RequireFromString("5.00")))
	assert.Equal(t, "12,345", fx.service.FormatPoints(12345))
}
