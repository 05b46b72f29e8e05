/*
Package gridsearch provides the information endpoints of the NIEHS Data Commons
grid search API: which search indexes are available, and which attributes each
index can be searched by.

There is no query execution here. The service describes the Epigenomics indexes
and resolves attribute catalogs through a sealed registry of named sources:
  - the built-in "metadata" catalog of Epigenomics projects
  - static catalogs declared in a YAML catalog file
  - catalogs published to a DynamoDB table

Basic Usage:

	svc, err := gridsearch.New(gridsearch.WithLogger(logger))
	if err != nil {
	    return err
	}

	indexes := svc.DescribeIndexes()

	attrs, err := svc.SearchAttributes(ctx, "metadata")
	if errors.IsUnknownIndex(err) {
	    // the index name is not served here
	}

The returned catalogs are built per call and owned by the caller. The
attribute catalog's Name always echoes the requested index name.
*/
package gridsearch
