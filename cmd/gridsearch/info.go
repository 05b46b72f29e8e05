/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Print the available search indexes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := buildService(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), svc.DescribeIndexes())
	},
}

var attributesCmd = &cobra.Command{
	Use:   "attributes <index_name>",
	Short: "Print the searchable attributes of an index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := buildService(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		catalog, err := svc.SearchAttributes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), catalog)
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
	rootCmd.AddCommand(attributesCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
