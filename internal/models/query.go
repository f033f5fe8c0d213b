package models

import "fmt"

// SortKey selects the comparison strategy used to order search results.
type SortKey string

const (
	// SortRelevance orders by computed relevance score. With an empty query
	// it degenerates to the popularity heuristic.
	SortRelevance SortKey = "relevance"
	// SortName orders by product name, ascending, case-insensitive.
	SortName SortKey = "name"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortKey = "price_asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortKey = "price_desc"
	// SortNewest orders by creation time, newest first.
	SortNewest SortKey = "newest"
	// SortPopularity orders best-selling products first.
	SortPopularity SortKey = "popularity"
)

// ParseSortKey validates a sort key string. The empty string selects
// relevance. An unknown key indicates a programming mistake in the caller
// (not bad catalog data) and is rejected rather than silently defaulted.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortName, SortPriceAsc, SortPriceDesc, SortNewest, SortPopularity:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// FilterSpec is a conjunctive set of optional structured constraints.
// Zero values mean "no constraint": an empty (or "all") category, nil price
// bounds, and false flag toggles never exclude anything.
type FilterSpec struct {
	Category        string   `json:"category,omitempty"`
	MinPrice        *float64 `json:"min_price,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	InStockOnly     bool     `json:"in_stock_only,omitempty"`
	FeaturedOnly    bool     `json:"featured_only,omitempty"`
	LatestOnly      bool     `json:"latest_only,omitempty"`
	BestSellingOnly bool     `json:"best_selling_only,omitempty"`
}

// IsZero reports whether the spec carries no constraints at all.
func (f FilterSpec) IsZero() bool {
	return (f.Category == "" || f.Category == "all") &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		!f.InStockOnly && !f.FeaturedOnly && !f.LatestOnly && !f.BestSellingOnly
}

// SearchRequest is one ranking call over a catalog snapshot. An empty query
// is valid: text scoring is skipped and ordering falls back to the selected
// sort key's non-relevance behavior.
type SearchRequest struct {
	Query  string     `json:"query"`
	Filter FilterSpec `json:"filter,omitempty"`
	Sort   string     `json:"sort,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}

// Validate normalizes limit and offset and checks the sort key.
func (r *SearchRequest) Validate() error {
	key, err := ParseSortKey(r.Sort)
	if err != nil {
		return err
	}
	r.Sort = string(key)
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return nil
}
