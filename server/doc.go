// Package server exposes gridsearch over HTTP with gin.
//
// Routes:
//
//	GET /api/v1/indexes                          index catalog
//	GET /api/v1/indexes/:index_name/attributes   attribute catalog of one index
//	GET /indexes, GET /indexes/:index_name/attributes (unversioned aliases)
//	GET /health, GET /live
//
// An unknown index answers with the configured client error status (400 unless
// catalogs.not_found_status says 404) and an ErrorResponse body. Any other
// failure, such as a corrupt stored catalog, is a 500 with a generic message.
package server
