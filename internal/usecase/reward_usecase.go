package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
)

// RewardUsecase defines the reward catalog operations
type RewardUsecase interface {
	// ListRewards returns the catalog annotated against the current balance
	ListRewards(ctx context.Context) ([]*entity.RewardOption, error)

	// RedeemReward spends the reward's points
	RedeemReward(ctx context.Context, rewardID string) (*RedemptionResult, error)

	// VoucherQR renders the QR voucher for a redemption entry
	VoucherQR(ctx context.Context, entryID string) ([]byte, error)
}
