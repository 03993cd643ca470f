// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyalty/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PointsHandler *handler.PointsHandler
	RewardHandler *handler.RewardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pointsHandler *handler.PointsHandler
	rewardHandler *handler.RewardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pointsHandler: params.PointsHandler,
		rewardHandler: params.RewardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The API serves a single local user, so no route is authenticated.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	pointsGroup := apiV1.Group("/points")
	{
		pointsGroup.GET("", r.pointsHandler.GetBalance)
		pointsGroup.GET("/history", r.pointsHandler.GetHistory)
		pointsGroup.GET("/history/:id/voucher", r.rewardHandler.GetVoucher)
		pointsGroup.POST("/award", r.pointsHandler.AwardPoints)
		pointsGroup.POST("/redeem", r.pointsHandler.RedeemPoints)
		pointsGroup.GET("/preview", r.pointsHandler.PreviewPurchase)
		pointsGroup.GET("/redemption", r.pointsHandler.QuoteRedemption)
	}

	apiV1.GET("/streak", r.pointsHandler.GetStreak)

	rewardsGroup := apiV1.Group("/rewards")
	{
		rewardsGroup.GET("", r.rewardHandler.ListRewards)
		rewardsGroup.POST("/:id/redeem", r.rewardHandler.RedeemReward)
	}
}
