/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/niehs/gridsearch/errors"
)

// Registry maps index names to the source of their attribute catalog.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]AttributeSource
	sealed  bool
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		sources: make(map[string]AttributeSource),
	}
}

// Register adds a source under the given index name.
// Names are matched exactly; registering a name twice or after Seal fails.
func (r *Registry) Register(name string, src AttributeSource) error {
	if src == nil {
		return errors.NewValidationError("source", fmt.Sprintf("nil source for index %q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("register %q: %w", name, errors.ErrRegistrySealed)
	}
	if _, exists := r.sources[name]; exists {
		return errors.NewAlreadyRegisteredError("attribute source", name)
	}
	r.sources[name] = src
	return nil
}

// MustRegister is like Register but panics on error. Meant for built-in sources.
func (r *Registry) MustRegister(name string, src AttributeSource) {
	if err := r.Register(name, src); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

// Seal closes the registry to further registration.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the source registered under name, or an UnknownIndexError.
func (r *Registry) Lookup(name string) (AttributeSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[name]
	if !ok {
		return nil, errors.NewUnknownIndexError(name)
	}
	return src, nil
}

// Names returns the registered index names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
