package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/hyperjump/kaimono/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func testCatalog() []*models.Product {
	return []*models.Product{
		{ID: "mug", Name: "Custom Mug", Category: "mugs", Price: 250, Stock: 5, Featured: true},
		{ID: "shirt", Name: "T-Shirt", Category: "clothing", Price: 500, Stock: 0},
	}
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	engine, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func TestEngine_Search_TextQuery(t *testing.T) {
	engine := newTestEngine(t, Options{})

	resp, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{Query: "mug"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	got := resp.Results[0]
	if got.Product.Name != "Custom Mug" {
		t.Errorf("result = %q, want Custom Mug", got.Product.Name)
	}
	// 50 name + 30 category + 15 featured; price 250 misses the band.
	if got.Score != 95 {
		t.Errorf("Score = %d, want 95", got.Score)
	}
	if got.Rank != 1 {
		t.Errorf("Rank = %d, want 1", got.Rank)
	}
}

func TestEngine_Search_EmptyQueryRelevanceUsesPopularity(t *testing.T) {
	engine := newTestEngine(t, Options{})

	resp, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2 (empty query keeps the whole catalog)", resp.Total)
	}
	if resp.Results[0].Product.Name != "Custom Mug" || resp.Results[0].Score != 3 {
		t.Errorf("first = %q score %d, want Custom Mug score 3",
			resp.Results[0].Product.Name, resp.Results[0].Score)
	}
	if resp.Results[1].Product.Name != "T-Shirt" || resp.Results[1].Score != 0 {
		t.Errorf("second = %q score %d, want T-Shirt score 0",
			resp.Results[1].Product.Name, resp.Results[1].Score)
	}
}

func TestEngine_Search_FilterWithoutQuery(t *testing.T) {
	engine := newTestEngine(t, Options{})

	resp, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{
		Filter: models.FilterSpec{InStockOnly: true},
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 1 || resp.Results[0].Product.Name != "Custom Mug" {
		t.Errorf("results = %v, want only Custom Mug", resp.Results)
	}
}

func TestEngine_Search_FilterCombinesWithQuery(t *testing.T) {
	engine := newTestEngine(t, Options{})
	catalog := []*models.Product{
		{ID: "a", Name: "Coffee Mug", Category: "mugs", Stock: 5},
		{ID: "b", Name: "Travel Mug", Category: "mugs", Stock: 0},
	}

	resp, err := engine.Search(context.Background(), catalog, &models.SearchRequest{
		Query:  "mug",
		Filter: models.FilterSpec{InStockOnly: true},
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 1 || resp.Results[0].Product.ID != "a" {
		t.Errorf("Total = %d, want 1 result (a)", resp.Total)
	}
}

func TestEngine_Search_InvalidSortKey(t *testing.T) {
	engine := newTestEngine(t, Options{})

	_, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{Sort: "rating"})
	if err == nil {
		t.Fatal("Search() with invalid sort key succeeded, want error")
	}
}

func TestEngine_Search_Pagination(t *testing.T) {
	engine := newTestEngine(t, Options{})
	catalog := make([]*models.Product, 10)
	for i := range catalog {
		catalog[i] = &models.Product{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Mug %02d", i),
			Price: float64(100 * (i + 1)),
		}
	}

	resp, err := engine.Search(context.Background(), catalog, &models.SearchRequest{
		Sort:   "price_asc",
		Limit:  3,
		Offset: 4,
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 10 {
		t.Errorf("Total = %d, want 10 (total counts all matches, not the page)", resp.Total)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("page size = %d, want 3", len(resp.Results))
	}
	if resp.Results[0].Product.ID != "p4" {
		t.Errorf("page starts at %s, want p4", resp.Results[0].Product.ID)
	}
	// Ranks are absolute positions, not page positions.
	if resp.Results[0].Rank != 5 || resp.Results[2].Rank != 7 {
		t.Errorf("ranks = [%d .. %d], want [5 .. 7]", resp.Results[0].Rank, resp.Results[2].Rank)
	}
}

func TestEngine_Search_OffsetPastEnd(t *testing.T) {
	engine := newTestEngine(t, Options{})

	resp, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{Offset: 50})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("page size = %d, want 0", len(resp.Results))
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
}

func TestEngine_Search_TextScoringDisabled(t *testing.T) {
	engine := newTestEngine(t, Options{EnableTextScoring: boolPtr(false)})

	resp, err := engine.Search(context.Background(), testCatalog(), &models.SearchRequest{Query: "mug"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	// No score gate: the whole catalog survives, ordered by popularity.
	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	if resp.Results[0].Product.Name != "Custom Mug" {
		t.Errorf("first = %q, want Custom Mug", resp.Results[0].Product.Name)
	}
}

func TestEngine_Search_DoesNotMutateCatalog(t *testing.T) {
	engine := newTestEngine(t, Options{})
	catalog := testCatalog()
	before := *catalog[0]

	if _, err := engine.Search(context.Background(), catalog, &models.SearchRequest{Query: "mug"}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if *catalog[0] != before {
		t.Errorf("catalog entry mutated: %+v -> %+v", before, *catalog[0])
	}
}

func TestEngine_Search_NilCatalogEntries(t *testing.T) {
	engine := newTestEngine(t, Options{})
	catalog := []*models.Product{nil, {Name: "Coffee Mug"}, nil}

	resp, err := engine.Search(context.Background(), catalog, &models.SearchRequest{Query: "mug"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
}

func TestEngine_Search_Deterministic(t *testing.T) {
	engine := newTestEngine(t, Options{})
	catalog := make([]*models.Product, 50)
	for i := range catalog {
		catalog[i] = &models.Product{
			ID:       fmt.Sprintf("p%d", i),
			Name:     "Coffee Mug",
			Category: "mugs",
			Price:    300,
		}
	}
	req := &models.SearchRequest{Query: "mug", Limit: 50}

	first, err := engine.Search(context.Background(), catalog, req)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := engine.Search(context.Background(), catalog, req)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		for j := range first.Results {
			if first.Results[j].Product.ID != again.Results[j].Product.ID {
				t.Fatalf("run %d: ordering differs at position %d", i, j)
			}
		}
	}
}

func TestEngine_Search_ParallelScoringMatchesSequential(t *testing.T) {
	// Large enough to cross the parallel threshold.
	catalog := make([]*models.Product, parallelThreshold+100)
	for i := range catalog {
		p := &models.Product{
			ID:    fmt.Sprintf("p%05d", i),
			Name:  fmt.Sprintf("Item %05d", i),
			Price: float64(i % 3000),
		}
		if i%7 == 0 {
			p.Name = fmt.Sprintf("Coffee Mug %05d", i)
		}
		if i%11 == 0 {
			p.Featured = true
		}
		catalog[i] = p
	}
	req := &models.SearchRequest{Query: "mug", Limit: 100}

	sequential := newTestEngine(t, Options{})
	parallel := newTestEngine(t, Options{Workers: 4})

	want, err := sequential.Search(context.Background(), catalog, req)
	if err != nil {
		t.Fatalf("sequential Search() error = %v", err)
	}
	got, err := parallel.Search(context.Background(), catalog, req)
	if err != nil {
		t.Fatalf("parallel Search() error = %v", err)
	}

	if got.Total != want.Total {
		t.Fatalf("Total = %d, want %d", got.Total, want.Total)
	}
	for i := range want.Results {
		if got.Results[i].Product.ID != want.Results[i].Product.ID ||
			got.Results[i].Score != want.Results[i].Score {
			t.Fatalf("position %d: parallel (%s, %d) != sequential (%s, %d)",
				i, got.Results[i].Product.ID, got.Results[i].Score,
				want.Results[i].Product.ID, want.Results[i].Score)
		}
	}
}

func TestEngine_Search_NilRequest(t *testing.T) {
	engine := newTestEngine(t, Options{})

	resp, err := engine.Search(context.Background(), testCatalog(), nil)
	if err != nil {
		t.Fatalf("Search(nil request) error = %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
}
