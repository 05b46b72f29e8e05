/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Write the fixed attribute catalogs to the DynamoDB table",
	Long: `Write every attribute catalog with a fixed definition (built-in and
catalogs.file) to dynamodb.table, so other deployments can serve them
with dynamodb.enabled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := newCatalogStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		// Store-backed catalogs are not republished.
		cfg.DynamoDB.Enabled = false
		svc, err := buildService(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		n, err := svc.Publish(cmd.Context(), store)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published %d catalogs to %s\n", n, cfg.DynamoDB.Table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().String("table", "", "DynamoDB table name")
	publishCmd.Flags().String("region", "us-east-1", "AWS region")
	publishCmd.Flags().String("endpoint", "", "DynamoDB endpoint override (e.g. DynamoDB Local)")

	_ = v.BindPFlag("dynamodb.table", publishCmd.Flags().Lookup("table"))
	_ = v.BindPFlag("dynamodb.region", publishCmd.Flags().Lookup("region"))
	_ = v.BindPFlag("dynamodb.endpoint", publishCmd.Flags().Lookup("endpoint"))
}
