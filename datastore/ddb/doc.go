/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "CATALOG#{Key}")
  - Listing a static partition with automatic pagination
  - Not-found reporting through errors.NotFoundError

Key Features:

Macro Expansion:
Keys use macros that are replaced with record attribute values on Put,
and with the lookup key on GetOne and Delete:

	keyMap := map[string]string{
	    "PK": "CATALOG",          // Static partition, enables List
	    "SK": "CATALOG#{Key}",    // Becomes "CATALOG#metadata"
	}

	client, _ := ddb.NewDynamoDBClient(ctx, ddb.ClientOptions{Region: "us-east-1"})
	store, _ := ddb.NewDynamodbDataStore[models.CatalogRecord](client, "grid-search", ddb.CatalogKeyMap)

The store only depends on the Client interface, so tests run against an
in-memory fake instead of a live table.
*/
package ddb
