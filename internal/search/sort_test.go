package search

import (
	"testing"
	"time"

	"github.com/hyperjump/kaimono/internal/models"
)

func scored(products ...*models.Product) []*models.ScoredProduct {
	results := make([]*models.ScoredProduct, len(products))
	for i, p := range products {
		results[i] = &models.ScoredProduct{Product: p}
	}
	return results
}

func ids(results []*models.ScoredProduct) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Product.ID
	}
	return out
}

func assertOrder(t *testing.T, results []*models.ScoredProduct, want ...string) {
	t.Helper()
	got := ids(results)
	if len(got) != len(want) {
		t.Fatalf("got %d results %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortScored_Relevance(t *testing.T) {
	results := scored(
		&models.Product{ID: "low", Name: "Zeta"},
		&models.Product{ID: "high", Name: "Alpha"},
		&models.Product{ID: "mid", Name: "Beta"},
	)
	results[0].Score = 10
	results[1].Score = 90
	results[2].Score = 50

	SortScored(results, models.SortRelevance)
	assertOrder(t, results, "high", "mid", "low")
}

func TestSortScored_RelevanceTiesBreakByName(t *testing.T) {
	results := scored(
		&models.Product{ID: "b", Name: "Banana Mug"},
		&models.Product{ID: "a", Name: "Apple Mug"},
	)
	results[0].Score = 50
	results[1].Score = 50

	SortScored(results, models.SortRelevance)
	assertOrder(t, results, "a", "b")
}

func TestSortScored_Name(t *testing.T) {
	results := scored(
		&models.Product{ID: "c", Name: "charlie"},
		&models.Product{ID: "a", Name: "Alpha"}, // case-insensitive
		&models.Product{ID: "b", Name: "bravo"},
	)
	SortScored(results, models.SortName)
	assertOrder(t, results, "a", "b", "c")
}

func TestSortScored_PriceAsc(t *testing.T) {
	results := scored(
		&models.Product{ID: "mid", Price: 500},
		&models.Product{ID: "cheap", Price: 100},
		&models.Product{ID: "dear", Price: 2500},
	)
	SortScored(results, models.SortPriceAsc)
	assertOrder(t, results, "cheap", "mid", "dear")
}

func TestSortScored_PriceAscStableOnTies(t *testing.T) {
	results := scored(
		&models.Product{ID: "first", Price: 300},
		&models.Product{ID: "second", Price: 300},
		&models.Product{ID: "third", Price: 300},
	)
	SortScored(results, models.SortPriceAsc)
	// Equal prices keep their catalog order.
	assertOrder(t, results, "first", "second", "third")
}

func TestSortScored_PriceDesc(t *testing.T) {
	results := scored(
		&models.Product{ID: "mid", Price: 500},
		&models.Product{ID: "dear", Price: 2500},
		&models.Product{ID: "cheap", Price: 100},
	)
	SortScored(results, models.SortPriceDesc)
	assertOrder(t, results, "dear", "mid", "cheap")
}

func TestSortScored_Newest(t *testing.T) {
	now := time.Now()
	results := scored(
		&models.Product{ID: "old", CreatedAt: now.Add(-48 * time.Hour)},
		&models.Product{ID: "new", CreatedAt: now},
		&models.Product{ID: "unset"}, // zero timestamp sinks to the end
		&models.Product{ID: "mid", CreatedAt: now.Add(-24 * time.Hour)},
	)
	SortScored(results, models.SortNewest)
	assertOrder(t, results, "new", "mid", "old", "unset")
}

func TestSortScored_Popularity(t *testing.T) {
	results := scored(
		&models.Product{ID: "plain1"},
		&models.Product{ID: "seller1", BestSelling: true},
		&models.Product{ID: "plain2"},
		&models.Product{ID: "seller2", BestSelling: true},
	)
	SortScored(results, models.SortPopularity)
	// Best sellers first, both partitions in original order.
	assertOrder(t, results, "seller1", "seller2", "plain1", "plain2")
}

func TestSortScored_Deterministic(t *testing.T) {
	build := func() []*models.ScoredProduct {
		r := scored(
			&models.Product{ID: "a", Name: "Mug", Price: 300},
			&models.Product{ID: "b", Name: "Mug", Price: 300},
			&models.Product{ID: "c", Name: "Mug", Price: 300},
		)
		for i := range r {
			r[i].Score = 50
		}
		return r
	}
	first := build()
	SortScored(first, models.SortRelevance)
	for i := 0; i < 20; i++ {
		again := build()
		SortScored(again, models.SortRelevance)
		for j := range first {
			if first[j].Product.ID != again[j].Product.ID {
				t.Fatalf("run %d: order %v differs from %v", i, ids(again), ids(first))
			}
		}
	}
}
