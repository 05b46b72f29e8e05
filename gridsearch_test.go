/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package gridsearch

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/niehs/gridsearch/datastore/mock"
	"github.com/niehs/gridsearch/errors"
	"github.com/niehs/gridsearch/models"
	"github.com/niehs/gridsearch/registry"
	"github.com/niehs/gridsearch/sources"
)

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return svc
}

func samplesDefinition() sources.Definition {
	return sources.Definition{
		Key: "samples",
		Catalog: models.AttributeCatalog{
			ID:   "epi_samples",
			Info: "Samples",
			Attributes: []models.AttributeDescriptor{
				{AttribName: "Sample", AttribType: models.AttributeTypeString, ShortcutText: "smp"},
			},
		},
	}
}

func TestDescribeIndexes(t *testing.T) {
	svc := newService(t)

	first := svc.DescribeIndexes()
	second := svc.DescribeIndexes()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("DescribeIndexes should be deterministic")
	}

	if len(first.Attributes) != 2 {
		t.Fatalf("Expected exactly 2 indexes, got %d", len(first.Attributes))
	}
	if first.Attributes[0].ID != "EpigenomicsProjects" || first.Attributes[1].ID != "EpigenomicsSamplesandRuns" {
		t.Errorf("Unexpected index order: %+v", first.Attributes)
	}
}

func TestSearchAttributesMetadata(t *testing.T) {
	svc := newService(t)

	catalog, err := svc.SearchAttributes(context.Background(), "metadata")
	if err != nil {
		t.Fatalf("SearchAttributes failed: %v", err)
	}
	if catalog.Name != "metadata" {
		t.Errorf("Expected name metadata, got %q", catalog.Name)
	}
	if len(catalog.Attributes) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(catalog.Attributes))
	}
	if catalog.Attributes[0].AttribName != "Hypothesis" || catalog.Attributes[1].AttribName != "Title" {
		t.Errorf("Unexpected attributes: %+v", catalog.Attributes)
	}
	if catalog.Attributes[0].ShortcutText != "hyp" || catalog.Attributes[1].ShortcutText != "hyp" {
		t.Errorf("Both attributes should use shortcut hyp: %+v", catalog.Attributes)
	}
}

func TestSearchAttributesUnknown(t *testing.T) {
	svc := newService(t)

	for _, name := range []string{"unknown_index", "", "EpigenomicsProjects", "METADATA"} {
		catalog, err := svc.SearchAttributes(context.Background(), name)
		if catalog != nil {
			t.Errorf("SearchAttributes(%q) returned a catalog: %+v", name, catalog)
		}
		if !errors.IsUnknownIndex(err) {
			t.Errorf("SearchAttributes(%q) expected unknown index error, got %v", name, err)
		}
	}
}

func TestNoStateLeaksBetweenCalls(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	wantIndexes := svc.DescribeIndexes()
	wantAttrs, _ := svc.SearchAttributes(ctx, "metadata")

	indexes := svc.DescribeIndexes()
	indexes.Attributes[0].ID = "mutated"
	indexes.Attributes = append(indexes.Attributes, models.IndexDescriptor{ID: "extra"})

	attrs, _ := svc.SearchAttributes(ctx, "metadata")
	attrs.Attributes[1].AttribName = "mutated"
	attrs.ID = "mutated"

	_, _ = svc.SearchAttributes(ctx, "unknown_index")

	if got := svc.DescribeIndexes(); !reflect.DeepEqual(got, wantIndexes) {
		t.Errorf("DescribeIndexes changed after mutation: %+v", got)
	}
	if got, _ := svc.SearchAttributes(ctx, "metadata"); !reflect.DeepEqual(got, wantAttrs) {
		t.Errorf("SearchAttributes changed after mutation: %+v", got)
	}
}

func TestConcurrentInterleavedCalls(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	wantIndexes := svc.DescribeIndexes()
	wantAttrs, _ := svc.SearchAttributes(ctx, "metadata")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				if got := svc.DescribeIndexes(); !reflect.DeepEqual(got, wantIndexes) {
					t.Errorf("DescribeIndexes mismatch: %+v", got)
				}
			case 1:
				got, err := svc.SearchAttributes(ctx, "metadata")
				if err != nil || !reflect.DeepEqual(got, wantAttrs) {
					t.Errorf("SearchAttributes mismatch: %+v, %v", got, err)
					return
				}
				got.Attributes[0].Info = "scribble"
			default:
				if _, err := svc.SearchAttributes(ctx, "unknown_index"); !errors.IsUnknownIndex(err) {
					t.Errorf("Expected unknown index error, got %v", err)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestCatalogDefinitions(t *testing.T) {
	svc := newService(t, WithCatalogDefinitions(samplesDefinition()))

	catalog, err := svc.SearchAttributes(context.Background(), "samples")
	if err != nil {
		t.Fatalf("SearchAttributes failed: %v", err)
	}
	if catalog.ID != "epi_samples" || catalog.Name != "samples" {
		t.Errorf("Unexpected catalog: %+v", catalog)
	}

	want := []string{"metadata", "samples"}
	if got := svc.IndexNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("IndexNames() = %v, want %v", got, want)
	}
}

func TestCatalogDefinitionCollision(t *testing.T) {
	def := samplesDefinition()
	def.Key = "metadata"

	_, err := New(WithCatalogDefinitions(def))
	if !errors.IsAlreadyRegistered(err) {
		t.Fatalf("Expected already registered error, got %v", err)
	}
}

func TestStoreSource(t *testing.T) {
	store := mock.New[models.CatalogRecord]().WithGetKeyFunc(func(r models.CatalogRecord) string { return r.Key })
	def := samplesDefinition()
	if err := store.Put(context.Background(), models.NewCatalogRecord("runs", def.Catalog, time.Now())); err != nil {
		t.Fatal(err)
	}

	svc := newService(t, WithStoreSource(sources.NewStoreSource(store), "runs", "assays"))
	ctx := context.Background()

	catalog, err := svc.SearchAttributes(ctx, "runs")
	if err != nil {
		t.Fatalf("SearchAttributes(runs) failed: %v", err)
	}
	if catalog.Name != "runs" || catalog.ID != "epi_samples" {
		t.Errorf("Unexpected catalog: %+v", catalog)
	}

	// registered but never published
	if _, err := svc.SearchAttributes(ctx, "assays"); !errors.IsUnknownIndex(err) {
		t.Errorf("Expected unknown index for unpublished catalog, got %v", err)
	}
	// not registered at all, the store is never consulted
	gets := store.Gets()
	if _, err := svc.SearchAttributes(ctx, "samples"); !errors.IsUnknownIndex(err) {
		t.Errorf("Expected unknown index, got %v", err)
	}
	if store.Gets() != gets {
		t.Error("Unregistered names should not reach the store")
	}
}

func TestSourceWithoutCatalog(t *testing.T) {
	empty := registry.AttributeSourceFunc(func(context.Context, string) (*models.AttributeCatalog, error) {
		return nil, nil
	})
	svc := newService(t, WithStoreSource(empty, "empty"))

	catalog, err := svc.SearchAttributes(context.Background(), "empty")
	if catalog != nil {
		t.Fatalf("Expected no catalog, got %+v", catalog)
	}
	if !errors.IsUnknownIndex(err) {
		t.Fatalf("Expected unknown index error, got %v", err)
	}
}

func TestWithIndexDescriber(t *testing.T) {
	custom := describerFunc(func() models.IndexCatalog {
		return models.IndexCatalog{ID: "custom"}
	})
	svc := newService(t, WithIndexDescriber(custom))
	if got := svc.DescribeIndexes(); got.ID != "custom" {
		t.Errorf("Expected custom describer, got %+v", got)
	}
}

type describerFunc func() models.IndexCatalog

func (f describerFunc) DescribeIndex() models.IndexCatalog { return f() }

func TestPublish(t *testing.T) {
	store := mock.New[models.CatalogRecord]().WithGetKeyFunc(func(r models.CatalogRecord) string { return r.Key })
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	storeSrc := registry.AttributeSourceFunc(func(context.Context, string) (*models.AttributeCatalog, error) {
		return nil, errors.NewUnknownIndexError("runs")
	})
	svc := newService(t,
		WithLogger(logger),
		WithClock(func() time.Time { return now }),
		WithCatalogDefinitions(samplesDefinition()),
		WithStoreSource(storeSrc, "runs"),
	)

	n, err := svc.Publish(context.Background(), store)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if n != 2 || store.Count() != 2 {
		t.Fatalf("Expected 2 published catalogs, got n=%d count=%d", n, store.Count())
	}

	record, err := store.GetOne(context.Background(), "metadata")
	if err != nil {
		t.Fatalf("metadata record missing: %v", err)
	}
	if record.Catalog.ID != "epi_projects" || record.Catalog.Name != "" {
		t.Errorf("Unexpected metadata record: %+v", record)
	}
	updated, err := record.Updated()
	if err != nil || !time.Time(updated).Equal(now) {
		t.Errorf("Unexpected UpdatedAt %q: %v", record.UpdatedAt, err)
	}

	if !strings.Contains(buf.String(), "published catalog") {
		t.Errorf("Expected publish log lines, got %q", buf.String())
	}
}

func TestPublishStoreError(t *testing.T) {
	store := mock.New[models.CatalogRecord]().WithPutError(errors.NewValidationError("key", "rejected"))
	svc := newService(t)

	n, err := svc.Publish(context.Background(), store)
	if n != 0 || !errors.IsValidationError(err) {
		t.Fatalf("Expected validation error and nothing published, got n=%d err=%v", n, err)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version || info.GoVersion == "" {
		t.Errorf("Unexpected version info: %+v", info)
	}
}
