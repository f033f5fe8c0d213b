package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/hyperjump/kaimono/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_UpsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := &models.Product{
		ID:          "p1",
		Name:        "Custom Mug",
		Description: "ceramic",
		Category:    "mugs",
		Price:       500,
		Stock:       5,
		Featured:    true,
		BestSelling: true,
		CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.UpsertProduct(ctx, p); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}

	got, err := store.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got.Name != "Custom Mug" || got.Price != 500 || got.Stock != 5 {
		t.Errorf("got %+v", got)
	}
	if !got.Featured || got.Latest || !got.BestSelling {
		t.Errorf("flags = featured %v latest %v best_selling %v", got.Featured, got.Latest, got.BestSelling)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set on insert")
	}
}

func TestSQLiteStore_UpsertReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertProduct(ctx, &models.Product{ID: "p1", Name: "Old Name", Price: 100}); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}
	if err := store.UpsertProduct(ctx, &models.Product{ID: "p1", Name: "New Name", Price: 200}); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}

	got, err := store.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got.Name != "New Name" || got.Price != 200 {
		t.Errorf("got %+v, want updated name and price", got)
	}
	count, err := store.CountProducts(ctx)
	if err != nil {
		t.Fatalf("CountProducts() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetProduct(context.Background(), "nope"); err == nil {
		t.Fatal("GetProduct() for missing ID succeeded, want error")
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertProduct(ctx, &models.Product{ID: "p1", Name: "Mug"}); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}
	if err := store.DeleteProduct(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if _, err := store.GetProduct(ctx, "p1"); err == nil {
		t.Error("product still present after delete")
	}
	if err := store.DeleteProduct(ctx, "p1"); err == nil {
		t.Error("deleting a missing product succeeded, want error")
	}
}

func TestSQLiteStore_ListPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		p := &models.Product{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Item %d", i)}
		if err := store.UpsertProduct(ctx, p); err != nil {
			t.Fatalf("UpsertProduct() error = %v", err)
		}
	}

	products, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("got %d products, want 5", len(products))
	}
	for i, p := range products {
		if p.ID != fmt.Sprintf("p%d", i) {
			t.Errorf("position %d has %s, want p%d", i, p.ID, i)
		}
	}
}

func TestSQLiteStore_ReplaceCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertProduct(ctx, &models.Product{ID: "old", Name: "Old"}); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}

	snapshot := []*models.Product{
		{ID: "a", Name: "Mug"},
		nil, // nil entries are skipped
		{ID: "b", Name: "Frame"},
	}
	if err := store.ReplaceCatalog(ctx, snapshot); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	products, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ID != "a" || products[1].ID != "b" {
		t.Errorf("catalog = [%s %s], want [a b]", products[0].ID, products[1].ID)
	}
	if _, err := store.GetProduct(ctx, "old"); err == nil {
		t.Error("previous catalog entry survived the replace")
	}
}

func TestSQLiteStore_ReplaceCatalogEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertProduct(ctx, &models.Product{ID: "p1", Name: "Mug"}); err != nil {
		t.Fatalf("UpsertProduct() error = %v", err)
	}
	if err := store.ReplaceCatalog(ctx, nil); err != nil {
		t.Fatalf("ReplaceCatalog(nil) error = %v", err)
	}
	count, err := store.CountProducts(ctx)
	if err != nil {
		t.Fatalf("CountProducts() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestSQLiteStore_SearchHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"mug", "frame", "mug", "gift", "  ", ""} {
		if err := store.RecordSearch(ctx, q); err != nil {
			t.Fatalf("RecordSearch(%q) error = %v", q, err)
		}
	}

	recent, err := store.RecentSearches(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSearches() error = %v", err)
	}
	// Distinct queries, most recent occurrence first; blanks never recorded.
	want := []string{"gift", "mug", "frame"}
	if !reflect.DeepEqual(recent, want) {
		t.Errorf("RecentSearches() = %v, want %v", recent, want)
	}
}

func TestSQLiteStore_RecentSearchesLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := store.RecordSearch(ctx, fmt.Sprintf("query %d", i)); err != nil {
			t.Fatalf("RecordSearch() error = %v", err)
		}
	}

	recent, err := store.RecentSearches(ctx, 3)
	if err != nil {
		t.Fatalf("RecentSearches() error = %v", err)
	}
	want := []string{"query 9", "query 8", "query 7"}
	if !reflect.DeepEqual(recent, want) {
		t.Errorf("RecentSearches(3) = %v, want %v", recent, want)
	}
}

func TestSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "catalog.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	store.Close()
}
