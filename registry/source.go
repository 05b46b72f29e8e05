/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package registry

import (
	"context"

	"github.com/niehs/gridsearch/models"
)

// AttributeSource resolves the attribute catalog of one named index.
// The returned catalog belongs to the caller.
type AttributeSource interface {
	SearchAttributes(ctx context.Context, indexName string) (*models.AttributeCatalog, error)
}

// AttributeSourceFunc adapts a function to AttributeSource.
type AttributeSourceFunc func(ctx context.Context, indexName string) (*models.AttributeCatalog, error)

// SearchAttributes calls f.
func (f AttributeSourceFunc) SearchAttributes(ctx context.Context, indexName string) (*models.AttributeCatalog, error) {
	return f(ctx, indexName)
}

// Snapshotter is implemented by sources whose catalog is fixed and can be published.
type Snapshotter interface {
	Snapshot() models.AttributeCatalog
}

// StaticSource serves a fixed catalog. Every call returns a fresh copy whose
// Name echoes the requested index name.
type StaticSource struct {
	catalog models.AttributeCatalog
}

// NewStaticSource copies catalog into a new StaticSource.
func NewStaticSource(catalog models.AttributeCatalog) *StaticSource {
	return &StaticSource{catalog: *catalog.Clone()}
}

// SearchAttributes returns a copy of the fixed catalog named after indexName.
func (s *StaticSource) SearchAttributes(_ context.Context, indexName string) (*models.AttributeCatalog, error) {
	out := s.catalog.Clone()
	out.Name = indexName
	return out, nil
}

// Snapshot returns a copy of the fixed catalog.
func (s *StaticSource) Snapshot() models.AttributeCatalog {
	return *s.catalog.Clone()
}
