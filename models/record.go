/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package models

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/niehs/gridsearch/errors"
)

// CatalogRecord is the persisted form of an attribute catalog, keyed by the index name it serves.
type CatalogRecord struct {
	// Key is the index name the catalog is looked up by.
	Key string `json:"key" dynamodbav:"Key"`
	// Catalog is the stored catalog. Its Name is rewritten on every lookup.
	Catalog AttributeCatalog `json:"catalog" dynamodbav:"Catalog"`
	// UpdatedAt is an RFC3339 timestamp of the last publish.
	UpdatedAt string `json:"updated_at,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

// NewCatalogRecord wraps a catalog for storage under key, stamped with now.
func NewCatalogRecord(key string, catalog AttributeCatalog, now time.Time) CatalogRecord {
	return CatalogRecord{
		Key:       key,
		Catalog:   *catalog.Clone(),
		UpdatedAt: strfmt.DateTime(now.UTC()).String(),
	}
}

// Updated parses UpdatedAt.
func (r *CatalogRecord) Updated() (strfmt.DateTime, error) {
	return strfmt.ParseDateTime(r.UpdatedAt)
}

// Validate validates the record key and the stored catalog
func (r *CatalogRecord) Validate(formats strfmt.Registry) error {
	if r.Key == "" {
		return errors.NewValidationError("key", "is required")
	}
	if r.UpdatedAt != "" && !formats.Validates("date-time", r.UpdatedAt) {
		return errors.NewValidationError("updated_at", "must be a date-time")
	}
	return r.Catalog.Validate(formats)
}
