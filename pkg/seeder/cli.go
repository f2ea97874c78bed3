package seeder

import (
	"context"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/database"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Reset and seed the database with demo fleet data",
		Action: func(c *cli.Context) error {
			if err := database.Connect(); err != nil {
				return err
			}
			defer database.Disconnect()

			return Seed(context.Background())
		},
	}
}
