package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "loyaltyctl",
		Usage: "inspect and operate the loyalty ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "storage",
				Usage: "override storage.driver (file, memory, redis, postgres)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log at the configured level instead of warn",
			},
		},
		Commands: []*cli.Command{
			commandBalance(),
			commandHistory(),
			commandStreak(),
			commandAward(),
			commandRedeem(),
			commandRewards(),
			commandVoucher(),
			commandExport(),
			commandImport(),
			commandReset(),
		},
	}
}
