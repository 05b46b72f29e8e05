/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package gridsearch

import (
	"context"
	"fmt"

	"github.com/niehs/gridsearch/datastore"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/registry"
)

// Publish writes every registered catalog with a fixed definition to store and
// returns how many were written. Store-backed catalogs are skipped.
func (s *Service) Publish(ctx context.Context, store datastore.DataStore[models.CatalogRecord]) (int, error) {
	now := s.now()
	published := 0
	for _, name := range s.registry.Names() {
		src, err := s.registry.Lookup(name)
		if err != nil {
			return published, err
		}
		snap, ok := src.(registry.Snapshotter)
		if !ok {
			s.logger.Debug("skipping catalog without fixed definition", "index", name)
			continue
		}

		record := models.NewCatalogRecord(name, snap.Snapshot(), now)
		if err := store.Put(ctx, record); err != nil {
			return published, fmt.Errorf("publish %q: %w", name, err)
		}
		s.logger.Info("published catalog", "index", name, "catalog_id", record.Catalog.ID)
		published++
	}
	return published, nil
}
