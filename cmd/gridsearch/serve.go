/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/niehs/gridsearch/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. It provides:
- GET /api/v1/indexes
- GET /api/v1/indexes/{index_name}/attributes
- GET /health and GET /live`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "localhost", "Server host")
	serveCmd.Flags().Int("port", 8080, "Server port")
	serveCmd.Flags().String("mode", "release", "Server mode (debug, release, test)")
	serveCmd.Flags().Int("not-found-status", 400, "HTTP status for unknown indexes (400 or 404)")

	_ = v.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = v.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("server.mode", serveCmd.Flags().Lookup("mode"))
	_ = v.BindPFlag("catalogs.not_found_status", serveCmd.Flags().Lookup("not-found-status"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := buildService(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(svc, cfg, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- srv.Start()
	}()

	select {
	case err := <-serverErrChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-sigChan:
		logger.Info("received signal", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}
