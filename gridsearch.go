/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package gridsearch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niehs/gridsearch/adapter/epigenomics"
	"github.com/niehs/gridsearch/logging"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/registry"
	"github.com/niehs/gridsearch/sources"
)

// Service is the information API: it lists indexes and their searchable attributes.
type Service struct {
	indexes    *IndexRegistry
	dispatcher *AttributeCatalogDispatcher
	registry   *registry.Registry
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*options)

type storeBinding struct {
	source registry.AttributeSource
	names  []string
}

type options struct {
	logger      *slog.Logger
	describer   IndexDescriber
	definitions []sources.Definition
	stores      []storeBinding
	now         func() time.Time
}

// WithLogger injects the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithIndexDescriber replaces the built-in Epigenomics index catalog.
func WithIndexDescriber(d IndexDescriber) Option {
	return func(o *options) {
		o.describer = d
	}
}

// WithCatalogDefinitions serves additional static catalogs, e.g. from sources.LoadFile.
func WithCatalogDefinitions(defs ...sources.Definition) Option {
	return func(o *options) {
		o.definitions = append(o.definitions, defs...)
	}
}

// WithStoreSource serves the named indexes from src.
func WithStoreSource(src registry.AttributeSource, names ...string) Option {
	return func(o *options) {
		o.stores = append(o.stores, storeBinding{source: src, names: names})
	}
}

// WithClock sets the clock used to stamp published records.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New builds a Service. The built-in "metadata" catalog is always registered;
// any option that registers a name twice makes New fail. The registry is sealed on return.
func New(opts ...Option) (*Service, error) {
	o := options{
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	adapter := epigenomics.NewSearchAdapter()
	if o.describer == nil {
		o.describer = adapter
	}

	reg := registry.New()
	reg.MustRegister(epigenomics.MetadataIndex, adapter)

	for _, def := range o.definitions {
		if err := reg.Register(def.Key, registry.NewStaticSource(def.Catalog)); err != nil {
			return nil, fmt.Errorf("catalog definition: %w", err)
		}
	}
	for _, binding := range o.stores {
		for _, name := range binding.names {
			if err := reg.Register(name, binding.source); err != nil {
				return nil, fmt.Errorf("store catalog: %w", err)
			}
		}
	}
	reg.Seal()

	o.logger.Debug("catalog registry sealed", "indexes", reg.Names())

	return &Service{
		indexes:    NewIndexRegistry(o.describer),
		dispatcher: NewAttributeCatalogDispatcher(reg, o.logger),
		registry:   reg,
		logger:     o.logger,
		now:        o.now,
	}, nil
}

// DescribeIndexes lists the indexes available at this endpoint.
func (s *Service) DescribeIndexes() models.IndexCatalog {
	return s.indexes.Describe()
}

// SearchAttributes lists the searchable attributes of indexName.
func (s *Service) SearchAttributes(ctx context.Context, indexName string) (*models.AttributeCatalog, error) {
	return s.dispatcher.Lookup(ctx, indexName)
}

// IndexNames returns the index names attribute lookups accept, sorted.
func (s *Service) IndexNames() []string {
	return s.registry.Names()
}
