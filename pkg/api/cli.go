package api

import (
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/database"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/redis_client"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the bus tracking web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					defer database.Disconnect()

					env := util.GetEnvironmentVariables()
					if env["NTC_REDIS_ADDRESS"] == "" {
						log.Info().Msg("Skipping redis setup")
					} else if err := redis_client.Connect(); err != nil {
						return err
					}

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
