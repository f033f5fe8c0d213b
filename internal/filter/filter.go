// Package filter applies structured catalog constraints independent of text
// search. Predicates are conjunctive and individually optional: an absent
// constraint never excludes a product.
package filter

import (
	"strings"

	"github.com/hyperjump/kaimono/internal/models"
)

// Match reports whether p satisfies every constraint in spec.
func Match(p *models.Product, spec models.FilterSpec) bool {
	if p == nil {
		return false
	}
	if c := strings.TrimSpace(spec.Category); c != "" && !strings.EqualFold(c, "all") {
		if !strings.EqualFold(strings.TrimSpace(p.Category), c) {
			return false
		}
	}
	if spec.MinPrice != nil && p.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && p.Price > *spec.MaxPrice {
		return false
	}
	if spec.InStockOnly && p.Stock <= 0 {
		return false
	}
	if spec.FeaturedOnly && !p.Featured {
		return false
	}
	if spec.LatestOnly && !p.Latest {
		return false
	}
	if spec.BestSellingOnly && !p.BestSelling {
		return false
	}
	return true
}

// Apply returns the products satisfying spec, preserving input order.
func Apply(products []*models.Product, spec models.FilterSpec) []*models.Product {
	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if Match(p, spec) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PriceBounds returns the catalog-wide minimum and maximum price. These are
// the default bounds for an unset price range, so leaving the range open
// never narrows results. An empty catalog yields (0, 0).
func PriceBounds(products []*models.Product) (min, max float64) {
	first := true
	for _, p := range products {
		if p == nil {
			continue
		}
		if first {
			min, max = p.Price, p.Price
			first = false
			continue
		}
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}
