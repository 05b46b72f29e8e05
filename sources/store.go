/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package sources

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/niehs/gridsearch/datastore"
	"github.com/niehs/gridsearch/errors"
	"github.com/niehs/gridsearch/logging"
	"github.com/niehs/gridsearch/models"
	"github.com/sony/gobreaker"
)

// BreakerSettings configures the circuit breaker guarding a store.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	ReadyToTripRatio float64
}

// DefaultBreakerSettings returns the settings used when none are given.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		ReadyToTripRatio: 0.6,
	}
}

// StoreSource serves attribute catalogs persisted in a datastore.
type StoreSource struct {
	store  datastore.DataStore[models.CatalogRecord]
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// StoreOption configures a StoreSource.
type StoreOption func(*storeOptions)

type storeOptions struct {
	name    string
	breaker BreakerSettings
	logger  *slog.Logger
}

// WithBreakerSettings overrides DefaultBreakerSettings.
func WithBreakerSettings(s BreakerSettings) StoreOption {
	return func(o *storeOptions) {
		o.breaker = s
	}
}

// WithStoreLogger sets the logger for breaker state changes.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		o.logger = l
	}
}

// WithBreakerName names the circuit breaker in logs.
func WithBreakerName(name string) StoreOption {
	return func(o *storeOptions) {
		o.name = name
	}
}

// NewStoreSource creates a StoreSource over store.
func NewStoreSource(store datastore.DataStore[models.CatalogRecord], opts ...StoreOption) *StoreSource {
	o := storeOptions{
		name:    "catalog-store",
		breaker: DefaultBreakerSettings(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	st := gobreaker.Settings{
		Name:        o.name,
		MaxRequests: o.breaker.MaxRequests,
		Interval:    o.breaker.Interval,
		Timeout:     o.breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= o.breaker.ReadyToTripRatio
		},
		// Unknown indexes are answers, not store failures.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFound(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("catalog store circuit breaker changed state",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &StoreSource{
		store:  store,
		cb:     gobreaker.NewCircuitBreaker(st),
		logger: logger,
	}
}

// SearchAttributes loads the catalog stored under indexName and names it after indexName.
// A missing record is reported as an UnknownIndexError.
func (s *StoreSource) SearchAttributes(ctx context.Context, indexName string) (*models.AttributeCatalog, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.store.GetOne(ctx, indexName)
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewUnknownIndexError(indexName)
		}
		return nil, fmt.Errorf("load catalog %q: %w", indexName, err)
	}

	record := res.(*models.CatalogRecord)
	if err := record.Catalog.Validate(strfmt.Default); err != nil {
		s.logger.ErrorContext(ctx, "stored catalog failed validation", "index", indexName, "error", err)
		return nil, errors.NewCorruptRecordError(indexName, err)
	}

	catalog := record.Catalog.Clone()
	catalog.Name = indexName
	return catalog, nil
}

// State reports the circuit breaker state.
func (s *StoreSource) State() gobreaker.State {
	return s.cb.State()
}
