package main

import (
	"encoding/json"
	"errors"
	"strings"

	"ev_warranty/internal/adapter/http/dto/response"
	"ev_warranty/internal/adapter/http/routes"

	"github.com/spf13/cobra"
)

var recallVIN string

var recallCheckCmd = &cobra.Command{
	Use:   "recall-check",
	Short: "Print the parts active recalls allow for a VIN",
	RunE: func(cmd *cobra.Command, args []string) error {
		vin := strings.TrimSpace(recallVIN)
		if vin == "" {
			return errors.New("--vin is required")
		}
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		deps, err := routes.Build(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		allowed, parts, err := deps.Recall.AllowedCatalog(cmd.Context(), vin)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromAllowedParts(vin, allowed, parts))
	},
}

func init() {
	rootCmd.AddCommand(recallCheckCmd)
	recallCheckCmd.Flags().StringVar(&recallVIN, "vin", "", "Vehicle identification number")
}
