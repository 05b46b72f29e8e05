/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package epigenomics

import (
	"context"

	"github.com/niehs/gridsearch/models"
)

// MetadataIndex is the index name the project attribute catalog is served under.
const MetadataIndex = "metadata"

const (
	serverID   = "niehs-epigenomics"
	serverName = "Epigenomics ElasticSearch Indexes"
	serverInfo = "NIEHS Data Commons search for Epigenomics data via project and sample information"

	maintainer   = "ODS"
	contactEmail = "mike.conway@nih.gov"
)

// SearchAdapter describes the Epigenomics core indexes exposed by the search API.
// It holds no state; every call builds new values.
type SearchAdapter struct{}

// NewSearchAdapter creates a SearchAdapter.
func NewSearchAdapter() *SearchAdapter {
	return &SearchAdapter{}
}

// DescribeIndex returns the catalog of Epigenomics indexes, projects first.
func (a *SearchAdapter) DescribeIndex() models.IndexCatalog {
	return models.IndexCatalog{
		ID:   serverID,
		Name: serverName,
		Info: serverInfo,
		Attributes: []models.IndexDescriptor{
			{
				ID:   "EpigenomicsProjects",
				Name: "Epigenomics Projects",
				Info: "Search of project request information, hypothesis, purpose, etc. " +
					"as entered during the project approval phase",
				Maintainer:   maintainer,
				ContactEmail: contactEmail,
			},
			{
				ID:           "EpigenomicsSamplesandRuns",
				Name:         "Epigenomics Samples and Runs",
				Info:         "Search of sequencing runs and samples",
				Maintainer:   maintainer,
				ContactEmail: contactEmail,
			},
		},
	}
}

// ProjectAttributes returns the attribute catalog of the project index.
// Name is left empty; lookups fill it with the requested index name.
// Both attributes share the "hyp" shortcut; clients depend on it as published.
func ProjectAttributes() models.AttributeCatalog {
	return models.AttributeCatalog{
		ID:   "epi_projects",
		Info: "Projects indexed from Epigenomics core",
		Attributes: []models.AttributeDescriptor{
			{
				AttribName:   "Hypothesis",
				AttribType:   models.AttributeTypeString,
				Info:         "Descriptive hypothesis of the porject submitted by researcher",
				ShortcutText: "hyp",
			},
			{
				AttribName:   "Title",
				AttribType:   models.AttributeTypeString,
				Info:         "Descriptive title of the project submitted by researcher",
				ShortcutText: "hyp",
			},
		},
	}
}

// SearchAttributes returns the project attribute catalog with Name set to indexName.
// It satisfies registry.AttributeSource.
func (a *SearchAdapter) SearchAttributes(_ context.Context, indexName string) (*models.AttributeCatalog, error) {
	catalog := ProjectAttributes()
	catalog.Name = indexName
	return &catalog, nil
}

// Snapshot returns the project attribute catalog for publishing.
func (a *SearchAdapter) Snapshot() models.AttributeCatalog {
	return ProjectAttributes()
}
