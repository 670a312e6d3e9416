package main

import (
	"ev_warranty/internal/config"
	"ev_warranty/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "ev-warranty",
	Short:        "EV warranty estimate service",
	Long:         `Serves versioned repair estimates for warranty claims and checks them against active recalls.`,
	SilenceUsage: true,
}

// setup loads the environment configuration and the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
