/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package sources

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	"github.com/niehs/gridsearch/datastore/mock"
	"github.com/niehs/gridsearch/errors"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/registry"
	"github.com/sony/gobreaker"
)

var _ registry.AttributeSource = (*StoreSource)(nil)

func newStore(t *testing.T) *mock.DataStore[models.CatalogRecord] {
	t.Helper()
	store := mock.New[models.CatalogRecord]().WithGetKeyFunc(func(r models.CatalogRecord) string { return r.Key })
	err := store.Put(context.Background(), models.NewCatalogRecord("samples", models.AttributeCatalog{
		ID:   "epi_samples",
		Info: "Samples",
		Attributes: []models.AttributeDescriptor{
			{AttribName: "Sample", AttribType: models.AttributeTypeString, ShortcutText: "smp"},
		},
	}, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestStoreSourceFound(t *testing.T) {
	src := NewStoreSource(newStore(t))

	catalog, err := src.SearchAttributes(context.Background(), "samples")
	if err != nil {
		t.Fatalf("SearchAttributes failed: %v", err)
	}
	if catalog.ID != "epi_samples" || catalog.Name != "samples" {
		t.Errorf("Unexpected catalog: %+v", catalog)
	}
}

func TestStoreSourceMissingIsUnknownIndex(t *testing.T) {
	src := NewStoreSource(newStore(t))

	for i := 0; i < 5; i++ {
		catalog, err := src.SearchAttributes(context.Background(), "unknown_index")
		if catalog != nil {
			t.Fatalf("Expected no catalog, got %+v", catalog)
		}
		if !errors.IsUnknownIndex(err) {
			t.Fatalf("Expected unknown index error, got %v", err)
		}
	}
	if src.State() != gobreaker.StateClosed {
		t.Errorf("Missing records should not trip the breaker, state is %s", src.State())
	}
}

func TestStoreSourceInvalidRecord(t *testing.T) {
	store := mock.New[models.CatalogRecord]()
	store.SetData(map[string]models.CatalogRecord{
		"broken": {Key: "broken", Catalog: models.AttributeCatalog{ID: ""}},
	})
	src := NewStoreSource(store)

	catalog, err := src.SearchAttributes(context.Background(), "broken")
	if catalog != nil {
		t.Fatalf("Expected no catalog, got %+v", catalog)
	}
	if !errors.IsCorruptRecord(err) {
		t.Fatalf("Expected corrupt record error, got %v", err)
	}
	if errors.IsValidationError(err) || errors.IsUnknownIndex(err) {
		t.Errorf("Corrupt record must not look like a caller error: %v", err)
	}
}

func TestStoreSourceBreakerTrips(t *testing.T) {
	store := newStore(t)
	storeErr := goerrors.New("connection refused")
	store.WithGetError(storeErr)

	src := NewStoreSource(store, WithBreakerName("test"), WithBreakerSettings(BreakerSettings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		ReadyToTripRatio: 0.5,
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := src.SearchAttributes(ctx, "samples")
		if !goerrors.Is(err, storeErr) {
			t.Fatalf("Expected store error, got %v", err)
		}
	}
	if src.State() != gobreaker.StateOpen {
		t.Fatalf("Expected breaker to be open, got %s", src.State())
	}

	calls := store.Gets()
	_, err := src.SearchAttributes(ctx, "samples")
	if !goerrors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Expected open state error, got %v", err)
	}
	if store.Gets() != calls {
		t.Error("Open breaker should not reach the store")
	}
}
