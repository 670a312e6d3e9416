package main

import (
	"os/signal"
	"syscall"

	"ev_warranty/internal/adapter/http/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := routes.Run(ctx, cfg, logger); err != nil {
			logger.Error("[main] server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	// A bare invocation serves, as container entrypoints expect.
	rootCmd.RunE = serveCmd.RunE
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to run the server on (overrides PORT)")
}
