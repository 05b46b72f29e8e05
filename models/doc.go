/*
Package models defines the descriptor types returned by gridsearch.

Key Types:

IndexCatalog:
The answer to "which indexes does this endpoint serve":

	catalog := &IndexCatalog{
	    ID:   "niehs-epigenomics",
	    Name: "Epigenomics ElasticSearch Indexes",
	    Attributes: []IndexDescriptor{
	        {ID: "EpigenomicsProjects", Maintainer: "ODS", ContactEmail: "mike.conway@nih.gov"},
	    },
	}

AttributeCatalog:
The searchable attributes of one index. Name echoes the index name the caller asked for.

CatalogRecord:
The persisted form of an AttributeCatalog used by datastores and catalog files.

Every model carries a go-openapi style Validate(strfmt.Registry) method, and Schema
renders the JSON Schema of a model.
*/
package models
