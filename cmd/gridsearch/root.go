/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/niehs/gridsearch"
	"github.com/niehs/gridsearch/config"
	"github.com/niehs/gridsearch/datastore"
	"github.com/niehs/gridsearch/datastore/ddb"
	"github.com/niehs/gridsearch/logging"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/sources"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()

	rootCmd = &cobra.Command{
		Use:          "gridsearch",
		Short:        "gridsearch: NIEHS Data Commons search index information",
		SilenceUsage: true,
		Long: `gridsearch describes the Epigenomics search indexes of the NIEHS Data Commons
and the attributes each index can be searched on.

Configuration is read from an optional .env file, an optional YAML config file
and GRIDSEARCH_* environment variables. Command-line flags take precedence.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("catalogs", "", "YAML file of extra attribute catalogs")

	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("catalogs.file", rootCmd.PersistentFlags().Lookup("catalogs"))
}

// loadConfig loads the configuration and sets up the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// buildService assembles the service: the built-in catalogs, catalogs from
// catalogs.file and, when enabled, catalogs served from the DynamoDB table.
func buildService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gridsearch.Service, error) {
	opts := []gridsearch.Option{gridsearch.WithLogger(logger)}

	if cfg.Catalogs.File != "" {
		defs, err := sources.LoadFile(cfg.Catalogs.File)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded catalog definitions", "file", cfg.Catalogs.File, "count", len(defs))
		opts = append(opts, gridsearch.WithCatalogDefinitions(defs...))
	}

	if cfg.DynamoDB.Enabled && len(cfg.DynamoDB.Catalogs) > 0 {
		store, err := newCatalogStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		src := sources.NewStoreSource(store,
			sources.WithStoreLogger(logger),
			sources.WithBreakerName("catalog-table"),
			sources.WithBreakerSettings(sources.BreakerSettings{
				MaxRequests:      cfg.CircuitBreaker.MaxRequests,
				Interval:         cfg.CircuitBreaker.IntervalDuration(),
				Timeout:          cfg.CircuitBreaker.TimeoutDuration(),
				ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
			}),
		)
		opts = append(opts, gridsearch.WithStoreSource(src, cfg.DynamoDB.Catalogs...))
	}

	svc, err := gridsearch.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize service: %w", err)
	}
	return svc, nil
}

// newCatalogStore opens the DynamoDB catalog table.
func newCatalogStore(ctx context.Context, cfg *config.Config) (datastore.DataStore[models.CatalogRecord], error) {
	if cfg.DynamoDB.Table == "" {
		return nil, fmt.Errorf("dynamodb.table is not set")
	}
	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientOptions{
		Region:    cfg.DynamoDB.Region,
		AccessKey: cfg.DynamoDB.AccessKey,
		SecretKey: cfg.DynamoDB.SecretKey,
		Endpoint:  cfg.DynamoDB.Endpoint,
	})
	if err != nil {
		return nil, err
	}
	store, err := ddb.NewDynamodbDataStore[models.CatalogRecord](client, cfg.DynamoDB.Table, ddb.CatalogKeyMap)
	if err != nil {
		return nil, err
	}
	return store, nil
}
