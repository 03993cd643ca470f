package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func commandBalance() *cli.Command {
	return &cli.Command{
		Name:  "balance",
		Usage: "print the points balance",
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				points := d.Loyalty.GetUserPoints(ctx)
				_, err := fmt.Fprintf(c.App.Writer, "%s points\n", d.Loyalty.FormatPoints(points))

				return err
			})
		},
	}
}

func commandHistory() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "print the ledger, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "print at most this many entries (0 for all)"},
		},
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				history := d.Loyalty.GetPointsHistory(ctx)
				if limit := c.Int("limit"); limit > 0 && len(history) > limit {
					history = history[:limit]
				}

				return printJSON(c.App.Writer, history)
			})
		},
	}
}

func commandStreak() *cli.Command {
	return &cli.Command{
		Name:  "streak",
		Usage: "print the current purchase streak",
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				return printJSON(c.App.Writer, d.Loyalty.GetCurrentStreak(ctx))
			})
		},
	}
}

func commandAward() *cli.Command {
	return &cli.Command{
		Name:  "award",
		Usage: "record a purchase and award points",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "amount", Usage: "purchase amount in dollars, e.g. 4.50", Required: true},
			&cli.StringFlag{Name: "description", Usage: "ledger description", Required: true},
			&cli.StringFlag{Name: "product-id"},
			&cli.StringFlag{Name: "product-name"},
		},
		Action: func(c *cli.Context) error {
			amount, err := decimal.NewFromString(c.String("amount"))
			if err != nil {
				return errors.Wrapf(err, "invalid amount %q", c.String("amount"))
			}

			input := &usecase.PurchaseInput{
				Amount:      amount,
				Description: c.String("description"),
			}
			if id := c.String("product-id"); id != "" {
				input.Product = &entity.ProductRef{ID: id, Name: c.String("product-name")}
			}

			return withDeps(c, func(ctx context.Context, d deps) error {
				result, err := d.Loyalty.AwardPointsForPurchase(ctx, input)
				if err != nil {
					return err
				}

				return printJSON(c.App.Writer, result)
			})
		},
	}
}

func commandRedeem() *cli.Command {
	return &cli.Command{
		Name:  "redeem",
		Usage: "spend points, either a raw amount or a catalog reward",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "points", Usage: "points to spend"},
			&cli.StringFlag{Name: "description", Usage: "ledger description for --points"},
			&cli.StringFlag{Name: "reward", Usage: "catalog reward ID to redeem instead of --points"},
		},
		Action: func(c *cli.Context) error {
			rewardID := c.String("reward")
			if rewardID == "" && !c.IsSet("points") {
				return errors.New("either --points or --reward is required")
			}

			return withDeps(c, func(ctx context.Context, d deps) error {
				var (
					result *usecase.RedemptionResult
					err    error
				)
				if rewardID != "" {
					result, err = d.Rewards.RedeemReward(ctx, rewardID)
				} else {
					result, err = d.Loyalty.RedeemPoints(ctx, c.Int("points"), c.String("description"))
				}
				if err != nil {
					return err
				}

				return printJSON(c.App.Writer, result)
			})
		},
	}
}

func commandRewards() *cli.Command {
	return &cli.Command{
		Name:  "rewards",
		Usage: "list the reward catalog",
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				rewards, err := d.Rewards.ListRewards(ctx)
				if err != nil {
					return err
				}

				for _, reward := range rewards {
					mark := " "
					if reward.Affordable {
						mark = "*"
					}
					if _, err := fmt.Fprintf(c.App.Writer, "%s %s  %-20s %6s pts\n",
						mark, reward.ID, reward.Title, d.Loyalty.FormatPoints(reward.PointsRequired)); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

func commandVoucher() *cli.Command {
	return &cli.Command{
		Name:  "voucher",
		Usage: "write the QR voucher of a redemption entry as PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "entry", Usage: "ledger entry ID", Required: true},
			&cli.StringFlag{Name: "out", Usage: "output file", Value: "voucher.png"},
		},
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				png, err := d.Rewards.VoucherQR(ctx, c.String("entry"))
				if err != nil {
					return err
				}

				if err := os.WriteFile(c.String("out"), png, 0o600); err != nil {
					return errors.Wrap(err, "write voucher")
				}

				_, err = fmt.Fprintf(c.App.Writer, "voucher written to %s\n", c.String("out"))

				return err
			})
		},
	}
}

func commandExport() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "save the ledger to the snapshot bucket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "snapshot name", Required: true},
		},
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				snap := d.Ledger.Snapshot(ctx)
				if err := d.Archive.Save(ctx, c.String("name"), snap); err != nil {
					return err
				}

				_, err := fmt.Fprintf(c.App.Writer, "exported %d entries, balance %s\n",
					len(snap.History), d.Loyalty.FormatPoints(snap.Balance))

				return err
			})
		},
	}
}

func commandImport() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "replace the ledger with a saved snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "snapshot name", Required: true},
		},
		Action: func(c *cli.Context) error {
			return withDeps(c, func(ctx context.Context, d deps) error {
				snap, err := d.Archive.Load(ctx, c.String("name"))
				if err != nil {
					return err
				}

				if err := d.Ledger.Reset(ctx); err != nil {
					return errors.Wrap(err, "reset ledger")
				}
				if err := d.Ledger.Restore(ctx, snap); err != nil {
					return errors.Wrap(err, "restore ledger")
				}

				_, err = fmt.Fprintf(c.App.Writer, "imported %d entries, balance %s\n",
					len(snap.History), d.Loyalty.FormatPoints(snap.Balance))

				return err
			})
		},
	}
}

func commandReset() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "delete the balance, history and streak",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Usage: "confirm the reset"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return errors.New("refusing to reset without --yes")
			}

			return withDeps(c, func(ctx context.Context, d deps) error {
				return d.Ledger.Reset(ctx)
			})
		},
	}
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
