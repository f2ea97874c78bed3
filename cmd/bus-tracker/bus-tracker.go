package main

import (
	"os"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/api"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/seeder"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("NTC_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("NTC_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "bus-tracker",
		Description: "NTC bus tracking API - realtime vehicle positions with conditional reads",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			seeder.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
