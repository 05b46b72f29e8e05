/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package datastore

import (
	"context"
)

type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	List(ctx context.Context) ([]T, error)

	Delete(ctx context.Context, key string) error
}
