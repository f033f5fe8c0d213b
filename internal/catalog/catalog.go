// Package catalog ingests loose product records and validates them once,
// at the boundary, into the strict model the search engine consumes.
// Malformed numeric fields fall back to 0 and missing text fields stay
// empty: a bad catalog row degrades instead of failing the import.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyperjump/kaimono/internal/models"
)

// Normalize converts a loose input record into a strict Product. Records
// without an ID get a fresh one assigned.
func Normalize(in *models.ProductInput) *models.Product {
	if in == nil {
		return nil
	}
	p := &models.Product{
		ID:          strings.TrimSpace(in.ID),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Featured:    in.Featured,
		Latest:      in.Latest,
		BestSelling: in.BestSelling,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Price = coerceFloat(in.Price)
	if p.Price < 0 {
		p.Price = 0
	}
	p.Stock = coerceInt(in.Stock)
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.CreatedAt = coerceTime(in.CreatedAt)
	return p
}

// NormalizeAll converts a batch of input records, dropping nil entries and
// records that have neither an ID nor a name.
func NormalizeAll(inputs []*models.ProductInput) []*models.Product {
	products := make([]*models.Product, 0, len(inputs))
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if strings.TrimSpace(in.ID) == "" && strings.TrimSpace(in.Name) == "" {
			continue
		}
		products = append(products, Normalize(in))
	}
	return products
}

// coerceFloat converts a loosely typed numeric value. Anything unparseable
// becomes 0.
func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceInt converts a loosely typed integer value. Fractional inputs are
// truncated; anything unparseable becomes 0.
func coerceInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return int(coerceFloat(v))
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return int(coerceFloat(v))
		}
		return i
	default:
		return 0
	}
}

// coerceTime parses an RFC 3339 timestamp, falling back to a date-only
// form. Unparseable values yield the zero time, which sorts as the oldest
// possible value under newest-first ordering.
func coerceTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// coerceBool accepts the usual spreadsheet spellings of a boolean.
func coerceBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}
