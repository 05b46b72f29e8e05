/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package gridsearch

import (
	"github.com/niehs/gridsearch/models"
)

// IndexDescriber builds the catalog of indexes for one search domain.
type IndexDescriber interface {
	DescribeIndex() models.IndexCatalog
}

// IndexRegistry answers "which indexes are available".
type IndexRegistry struct {
	describer IndexDescriber
}

// NewIndexRegistry creates an IndexRegistry over describer.
func NewIndexRegistry(describer IndexDescriber) *IndexRegistry {
	return &IndexRegistry{describer: describer}
}

// Describe returns the index catalog. It never fails and the result is owned by the caller.
func (r *IndexRegistry) Describe() models.IndexCatalog {
	catalog := r.describer.DescribeIndex()
	return *catalog.Clone()
}
