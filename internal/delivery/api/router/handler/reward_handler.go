package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler holds dependencies for reward and voucher handlers
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

// ListRewards handles listing the catalog
func (h *RewardHandler) ListRewards(c echo.Context) error {
	rewards, err := h.rewardUC.ListRewards(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rewards)
}

// RedeemReward handles redeeming a catalog reward
func (h *RewardHandler) RedeemReward(c echo.Context) error {
	rewardID := c.Param("id")
	if rewardID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid reward ID")
	}

	result, err := h.rewardUC.RedeemReward(c.Request().Context(), rewardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetVoucher handles rendering the QR voucher for a redemption entry
func (h *RewardHandler) GetVoucher(c echo.Context) error {
	entryID := c.Param("id")
	if entryID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	png, err := h.rewardUC.VoucherQR(c.Request().Context(), entryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
