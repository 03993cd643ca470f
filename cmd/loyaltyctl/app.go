package main

import (
	"context"
	"log/slog"
	"os"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/clock"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/persistence"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/infra/snapshot"
	"loyalty/internal/usecase"
	"loyalty/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

// deps are the components a command can use.
type deps struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Ledger  repository.LedgerStore
	Loyalty usecase.LoyaltyUsecase
	Rewards usecase.RewardUsecase
	Archive service.SnapshotArchive
}

// withDeps builds the same graph the server uses, starts it, runs fn and
// stops it again so that store connections are closed.
func withDeps(c *cli.Context, fn func(ctx context.Context, d deps) error) error {
	var d deps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			newLogger,
			context.Background,
			clock.System,
			qrcode.NewVoucherService,
			snapshot.New,
			impl.NewStreakTracker,
			impl.NewLoyaltyService,
			impl.NewRewardService,
		),
		persistence.Module,
		pubsub.Module,
		fx.Decorate(func(cfg *config.Config) *config.Config {
			if driver := c.String("storage"); driver != "" {
				cfg.Storage.Driver = driver
			}
			if !c.Bool("verbose") {
				cfg.Env.Log.Level = "warn"
			}

			return cfg
		}),
		fx.Populate(&d),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build loyalty components")
	}

	startCtx, cancel := context.WithTimeout(c.Context, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start loyalty components")
	}

	ctx := deliverycontext.NewScope(c.Context, d.Logger, "", deliverycontext.ChannelCLI)
	runErr := fn(ctx, d)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop loyalty components")
	}

	return runErr
}

// newLogger keeps stdout for command output.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(cfg, os.Stderr)
}
