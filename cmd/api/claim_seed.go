package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ev_warranty/internal/adapter/persistence/repository"
	"ev_warranty/internal/domain/entities"
	"ev_warranty/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedClaimID string
	seedVIN     string
	seedStatus  string
)

// claimSeedCmd writes a claim into the self-hosted claims table so the
// dynamodb authority mode can be exercised locally.
var claimSeedCmd = &cobra.Command{
	Use:   "claim-seed",
	Short: "Store a claim in the DynamoDB claims table",
	RunE: func(cmd *cobra.Command, args []string) error {
		claim := entities.Claim{
			ID:     strings.TrimSpace(seedClaimID),
			VIN:    strings.TrimSpace(seedVIN),
			Status: entities.ClaimStatus(strings.ToUpper(strings.TrimSpace(seedStatus))),
		}
		if claim.ID == "" || claim.VIN == "" {
			return errors.New("--id and --vin are required")
		}

		_, logger, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx := cmd.Context()
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return err
		}
		claims := repository.NewClaimDynamoRepository(ddb)
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			estimates := repository.NewEstimateVersionDynamoRepository(ddb, claims)
			if err := database.EnsureTables(ctx, ddb, estimates.TableName(), claims.TableName(), logger); err != nil {
				return err
			}
		}
		if err := claims.Save(ctx, claim); err != nil {
			return err
		}

		logger.Info("[main] claim seeded", zap.String("claim_id", claim.ID), zap.String("vin", claim.VIN), zap.String("status", string(claim.Status)))
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded claim %s (%s)\n", claim.ID, claim.Status)
		return err
	},
}

func init() {
	rootCmd.AddCommand(claimSeedCmd)
	claimSeedCmd.Flags().StringVar(&seedClaimID, "id", "", "Claim ID")
	claimSeedCmd.Flags().StringVar(&seedVIN, "vin", "", "Vehicle identification number")
	claimSeedCmd.Flags().StringVar(&seedStatus, "status", string(entities.ClaimStatusEstimating), "Claim status")
}
