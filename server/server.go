/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niehs/gridsearch/config"
	"github.com/niehs/gridsearch/models"
)

// InfoService is what the HTTP layer needs from gridsearch.Service.
type InfoService interface {
	DescribeIndexes() models.IndexCatalog
	SearchAttributes(ctx context.Context, indexName string) (*models.AttributeCatalog, error)
	IndexNames() []string
}

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	server         *http.Server
	svc            InfoService
	logger         *slog.Logger
	notFoundStatus int
}

// New creates a server for svc and sets up its routes.
func New(svc InfoService, cfg *config.Config, logger *slog.Logger) *Server {
	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		router:         gin.New(),
		svc:            svc,
		logger:         logger,
		notFoundStatus: cfg.Catalogs.NotFoundStatus,
	}
	if s.notFoundStatus == 0 {
		s.notFoundStatus = http.StatusBadRequest
	}

	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(loggingMiddleware(logger))
	s.setupRoutes()

	s.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	info := newInfoHandler(s.svc, s.logger, s.notFoundStatus)
	health := newHealthHandler(s.svc)

	s.router.GET("/health", health.HealthCheck)
	s.router.GET("/live", health.LivenessCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/indexes", info.GetIndexes)
		v1.GET("/indexes/:index_name/attributes", info.GetIndexSearchAttributes)
	}

	// Unversioned aliases kept for existing clients
	s.router.GET("/indexes", info.GetIndexes)
	s.router.GET("/indexes/:index_name/attributes", info.GetIndexSearchAttributes)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start serves until Stop is called. A graceful stop returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}
