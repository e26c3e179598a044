package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/sp/internal/services"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	if os.Getenv("SP_DEBUG") != "" {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	config := shared.DefaultConfig()
	if path := shared.DefaultConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if loaded, err := shared.LoadConfig(path); err == nil {
				config = loaded
			} else {
				logger.Warnf("failed to load config, using defaults: %v", err)
			}
		} else {
			// First run: scaffold a config file for credentials.
			if err := shared.CreateConfigFile(path); err != nil {
				logger.Debugf("could not write starter config: %v", err)
			}
		}
	}
	config.ApplyEnv()

	cache := services.NewTokenCache(config.TokenPath())

	var service services.Service
	if config.Credentials.ClientID != "" && config.Credentials.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(config.Credentials.Map()); err == nil {
			// Commands work with a cold cache until `sp auth login` runs.
			if err := svc.AuthenticateFromCache(context.Background(), cache); err != nil {
				logger.Debugf("no cached token: %v", err)
			}
			service = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Service: service,
		Cache:   cache,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "sp",
		Usage:    "Spotify from the command line",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}
