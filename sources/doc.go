/*
Package sources provides attribute catalog sources beyond the built-in ones.

Catalog files declare additional catalogs in YAML:

	catalogs:
	  - key: samples
	    id: epi_samples
	    info: Samples indexed from Epigenomics core
	    attributes:
	      - attrib_name: Sample
	        attrib_type: String
	        info: Sample identifier
	        shortcut_text: smp

LoadFile validates every catalog and returns Definitions that callers wrap in
registry.NewStaticSource.

StoreSource serves catalogs published to a datastore (see datastore/ddb) through a
gobreaker circuit breaker. A missing record is an errors.UnknownIndexError and does
not count as a store failure.
*/
package sources
