/*
Package datastore defines the persistence interface for stored attribute catalogs.

The main interface is DataStore[T], which provides generic keyed operations for any record type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    List(ctx context.Context) ([]T, error)
	    Delete(ctx context.Context, key string) error
	}

GetOne and Delete return an errors.NotFoundError when no record exists for the key.

Implementations:
  - ddb: DynamoDB implementation using a single-table key layout
  - mock: In-memory mock implementation for testing
*/
package datastore
