package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PointsHandlerParams holds dependencies for PointsHandler, injected by Fx.
type PointsHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// PointsHandler holds dependencies for points and streak handlers
type PointsHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler
func NewPointsHandler(params PointsHandlerParams) *PointsHandler {
	return &PointsHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// AwardPointsRequest represents the request body for recording a purchase
type AwardPointsRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description" validate:"required,max=200"`
	ProductID   string           `json:"product_id" validate:"omitempty,max=64"`
	ProductName string           `json:"product_name" validate:"omitempty,max=120"`
}

// RedeemPointsRequest represents the request body for spending points
type RedeemPointsRequest struct {
	Points      int    `json:"points"`
	Description string `json:"description" validate:"required,max=200"`
}

// BalanceResponse is the current balance with its display form
type BalanceResponse struct {
	Points    int    `json:"points"`
	Formatted string `json:"formatted"`
}

// GetBalance handles reading the points balance
func (h *PointsHandler) GetBalance(c echo.Context) error {
	points := h.loyaltyUC.GetUserPoints(c.Request().Context())

	return response.Success(c, http.StatusOK, BalanceResponse{
		Points:    points,
		Formatted: h.loyaltyUC.FormatPoints(points),
	})
}

// GetHistory handles listing the ledger, newest first
func (h *PointsHandler) GetHistory(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.loyaltyUC.GetPointsHistory(c.Request().Context()))
}

// AwardPoints handles recording a purchase
func (h *PointsHandler) AwardPoints(c echo.Context) error {
	var req AwardPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	// A missing amount must not be recorded as a $0 purchase: that would
	// still advance the streak.
	if req.Amount == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "invalid request: amount is required")
	}

	input := &usecase.PurchaseInput{
		Amount:      *req.Amount,
		Description: req.Description,
	}
	if req.ProductID != "" {
		input.Product = &entity.ProductRef{ID: req.ProductID, Name: req.ProductName}
	}

	result, err := h.loyaltyUC.AwardPointsForPurchase(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// RedeemPoints handles spending points
func (h *PointsHandler) RedeemPoints(c echo.Context) error {
	var req RedeemPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.loyaltyUC.RedeemPoints(c.Request().Context(), req.Points, req.Description)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// PreviewPurchase handles projecting the award for a price without recording it
func (h *PointsHandler) PreviewPurchase(c echo.Context) error {
	price, err := decimal.NewFromString(c.QueryParam("price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "price must be a decimal number")
	}

	redeemableWith := 0
	if raw := c.QueryParam("redeemable_with"); raw != "" {
		redeemableWith, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "redeemable_with must be an integer")
		}
	}

	preview, err := h.loyaltyUC.PreviewPurchase(c.Request().Context(), price, redeemableWith)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// QuoteRedemption handles pricing an item in points
func (h *PointsHandler) QuoteRedemption(c echo.Context) error {
	itemPrice, err := decimal.NewFromString(c.QueryParam("item_price"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "item_price must be a decimal number")
	}

	quote, err := h.loyaltyUC.QuoteRedemption(c.Request().Context(), itemPrice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// GetStreak handles reading the current streak
func (h *PointsHandler) GetStreak(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.loyaltyUC.GetCurrentStreak(c.Request().Context()))
}
