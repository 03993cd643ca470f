package impl

import (
	"context"
	"fmt"

	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"go.uber.org/fx"
)

type rewardService struct {
	loyalty  usecase.LoyaltyUsecase
	ledger   repository.LedgerStore
	vouchers service.VoucherService
	catalog  []entity.Reward
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	Loyalty  usecase.LoyaltyUsecase
	Ledger   repository.LedgerStore
	Vouchers service.VoucherService
}

// NewRewardService creates a reward service over the store catalog
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		loyalty:  params.Loyalty,
		ledger:   params.Ledger,
		vouchers: params.Vouchers,
		catalog:  entity.DefaultRewardCatalog(),
	}
}

// ListRewards returns the catalog with an affordability flag per reward
func (s *rewardService) ListRewards(ctx context.Context) ([]*entity.RewardOption, error) {
	balance := s.loyalty.GetUserPoints(ctx)

	options := make([]*entity.RewardOption, 0, len(s.catalog))
	for _, reward := range s.catalog {
		options = append(options, &entity.RewardOption{
			Reward:     reward,
			Affordable: balance >= reward.PointsRequired,
		})
	}

	return options, nil
}

// RedeemReward spends the reward's points with a "Redeemed: <title>" entry
func (s *rewardService) RedeemReward(ctx context.Context, rewardID string) (*usecase.RedemptionResult, error) {
	reward, ok := s.findReward(rewardID)
	if !ok {
		return nil, domainerrors.ErrRewardNotFound
	}

	result, err := s.loyalty.RedeemPoints(ctx, reward.PointsRequired, reward.RedemptionDescription())
	if err != nil {
		return nil, err
	}

	return result, nil
}

// VoucherQR renders a PNG QR code for a redemption entry
func (s *rewardService) VoucherQR(ctx context.Context, entryID string) ([]byte, error) {
	entry, ok := s.ledger.FindEntry(ctx, entryID)
	if !ok {
		return nil, domainerrors.ErrEntryNotFound
	}
	if !entry.IsRedemption() {
		return nil, domainerrors.ErrNotRedemption
	}

	png, err := s.vouchers.GenerateVoucherQR(&service.VoucherData{
		EntryID:     entry.ID,
		Type:        constants.VoucherTypeRedemption,
		Points:      -entry.Amount,
		Description: entry.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate voucher QR: %w", err)
	}

	return png, nil
}

func (s *rewardService) findReward(id string) (entity.Reward, bool) {
	for _, reward := range s.catalog {
		if reward.ID == id {
			return reward, true
		}
	}

	return entity.Reward{}, false
}
