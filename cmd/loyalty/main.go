package main

import (
	"context"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/delivery"
	"loyalty/internal/delivery/api"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/clock"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/persistence"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.System,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewVoucherService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStreakTracker,
			impl.NewLoyaltyService,
			impl.NewRewardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPointsHandler,
			handler.NewRewardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
