// Package models defines core data structures for products, search requests, and results.
package models

import "time"

// Product is one catalog entry. The search engine treats products as
// read-only: relevance scores ride on a transient ScoredProduct pairing and
// are never attached to the stored entity.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category,omitempty" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Featured    bool      `json:"featured" db:"featured"`
	Latest      bool      `json:"latest" db:"latest"`
	BestSelling bool      `json:"best_selling" db:"best_selling"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductInput is the loose wire form accepted at the catalog boundary.
// Numeric fields are declared as any because upstream feeds (spreadsheets,
// legacy exports) deliver prices and stock counts as numbers or strings
// interchangeably; the catalog package coerces them once, fail-open, into a
// strict Product.
type ProductInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       any    `json:"price,omitempty"`
	Stock       any    `json:"stock,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
	Latest      bool   `json:"latest,omitempty"`
	BestSelling bool   `json:"best_selling,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
