/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niehs/gridsearch"
	"github.com/niehs/gridsearch/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// infoHandler serves the index information endpoints
type infoHandler struct {
	svc            InfoService
	logger         *slog.Logger
	notFoundStatus int
}

func newInfoHandler(svc InfoService, logger *slog.Logger, notFoundStatus int) *infoHandler {
	return &infoHandler{svc: svc, logger: logger, notFoundStatus: notFoundStatus}
}

// GetIndexes handles GET /indexes - the search indexes available at this endpoint
func (h *infoHandler) GetIndexes(c *gin.Context) {
	h.logger.DebugContext(c.Request.Context(), "get_indexes")
	c.JSON(http.StatusOK, h.svc.DescribeIndexes())
}

// GetIndexSearchAttributes handles GET /indexes/:index_name/attributes
func (h *infoHandler) GetIndexSearchAttributes(c *gin.Context) {
	indexName := c.Param("index_name")
	h.logger.DebugContext(c.Request.Context(), "get_index_search_attributes", "index", indexName)

	catalog, err := h.svc.SearchAttributes(c.Request.Context(), indexName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (h *infoHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.IsUnknownIndex(err):
		c.JSON(h.notFoundStatus, ErrorResponse{
			Error:   "index_not_found",
			Message: errors.ErrIndexNotFound.Error(),
			Code:    h.notFoundStatus,
		})
	default:
		// Unknown index is the only caller error; the rest stays in the log.
		h.logger.ErrorContext(c.Request.Context(), "attribute lookup failed",
			"index", c.Param("index_name"), "corrupt_record", errors.IsCorruptRecord(err), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error",
			Code:    http.StatusInternalServerError,
		})
	}
}

// healthHandler handles health check requests
type healthHandler struct {
	svc InfoService
}

func newHealthHandler(svc InfoService) *healthHandler {
	return &healthHandler{svc: svc}
}

// HealthCheck handles GET /health
func (h *healthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "gridsearch",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   gridsearch.GetVersionInfo(),
		"indexes":   h.svc.IndexNames(),
	})
}

// LivenessCheck handles GET /live
func (h *healthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"service":   "gridsearch",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
