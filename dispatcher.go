/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package gridsearch

import (
	"context"
	"log/slog"

	"github.com/niehs/gridsearch/errors"
	"github.com/niehs/gridsearch/logging"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/registry"
)

// AttributeCatalogDispatcher resolves attribute catalogs by index name.
type AttributeCatalogDispatcher struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewAttributeCatalogDispatcher creates a dispatcher over reg.
func NewAttributeCatalogDispatcher(reg *registry.Registry, logger *slog.Logger) *AttributeCatalogDispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AttributeCatalogDispatcher{registry: reg, logger: logger}
}

// Lookup returns the attribute catalog registered under indexName, with Name set to
// indexName exactly as given. Unregistered names, including "", yield an
// errors.UnknownIndexError and a nil catalog.
func (d *AttributeCatalogDispatcher) Lookup(ctx context.Context, indexName string) (*models.AttributeCatalog, error) {
	src, err := d.registry.Lookup(indexName)
	if err != nil {
		d.logger.DebugContext(ctx, "attribute lookup for unknown index", "index", indexName)
		return nil, err
	}

	catalog, err := src.SearchAttributes(ctx, indexName)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		d.logger.WarnContext(ctx, "attribute source returned no catalog", "index", indexName)
		return nil, errors.NewUnknownIndexError(indexName)
	}
	catalog.Name = indexName
	return catalog, nil
}
