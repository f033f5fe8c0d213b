package search

import (
	"sort"

	"github.com/hyperjump/kaimono/internal/models"
	"github.com/hyperjump/kaimono/internal/ranking"
)

// SortScored orders results in place according to the sort key. Every
// comparator is total, and the sort is stable: comparators that leave ties
// unresolved rely on input order as the final tie-break.
func SortScored(results []*models.ScoredProduct, key models.SortKey) {
	switch key {
	case models.SortRelevance:
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			return ranking.Normalize(results[i].Product.Name) < ranking.Normalize(results[j].Product.Name)
		})
	case models.SortName:
		sort.SliceStable(results, func(i, j int) bool {
			return ranking.Normalize(results[i].Product.Name) < ranking.Normalize(results[j].Product.Name)
		})
	case models.SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product.Price < results[j].Product.Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product.Price > results[j].Product.Price
		})
	case models.SortNewest:
		// Zero timestamps compare as the oldest possible value and sink to
		// the end.
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product.CreatedAt.After(results[j].Product.CreatedAt)
		})
	case models.SortPopularity:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Product.BestSelling && !results[j].Product.BestSelling
		})
	}
}
