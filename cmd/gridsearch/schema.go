/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"github.com/niehs/gridsearch/models"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the response models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schemas, err := models.ResponseSchemas()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), schemas)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
