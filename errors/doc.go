/*
Package errors provides semantic error types for gridsearch.

The package defines the error scenarios of the catalog service with specific types
that can be checked using the standard errors.Is() function or the provided helpers.

Common Errors:

	var (
	    ErrIndexNotFound     = errors.New("Error: Index not found")
	    ErrNotFound          = errors.New("record not found")
	    ErrAlreadyRegistered = errors.New("already registered")
	    ErrRegistrySealed    = errors.New("registry is sealed")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrCorruptRecord     = errors.New("corrupt record")
	)

Usage:

	catalog, err := dispatcher.Lookup(ctx, indexName)
	if err != nil {
	    if errors.IsUnknownIndex(err) {
	        // client error: the index name is not served here
	    }
	    return nil, err
	}

UnknownIndexError is the only error the built-in lookups produce. The remaining
types come from registration, catalog files and datastores. A stored catalog that
fails validation is a CorruptRecordError, which is a server fault and does not
match ErrInvalidInput.
*/
package errors
