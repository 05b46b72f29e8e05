// Package epigenomics provides the built-in descriptors of the NIEHS Epigenomics core
// search indexes: the index catalog and the project attribute catalog served as "metadata".
package epigenomics
