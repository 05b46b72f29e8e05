/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

// Package mock provides mock implementations of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/niehs/gridsearch/errors"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	getKeyFunc  func(entity T) string
	getError    error
	putError    error
	listError   error
	deleteError error
	gets        int
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithListError makes List operations return an error
func (m *DataStore[T]) WithListError(err error) *DataStore[T] {
	m.listError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gets++
	if m.getError != nil {
		return nil, m.getError
	}
	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.data[key] = entity
	return nil
}

// List returns all entities ordered by key
func (m *DataStore[T]) List(ctx context.Context) ([]T, error) {
	if m.listError != nil {
		return nil, m.listError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		results = append(results, m.data[k])
	}
	return results, nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Gets returns how many times GetOne has been called
func (m *DataStore[T]) Gets() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gets
}

// extractKey attempts to extract a key from an entity
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	return fmt.Sprintf("key_%v", entity)
}
