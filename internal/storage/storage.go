// Package storage defines persistence for the product catalog and the
// search history. The engine itself stays pure: storage only feeds it
// catalog snapshots and read-only history.
package storage

import (
	"context"

	"github.com/hyperjump/kaimono/internal/models"
)

// Store defines catalog and search-history persistence operations.
type Store interface {
	// Product operations
	UpsertProduct(ctx context.Context, p *models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CountProducts(ctx context.Context) (int64, error)

	// ReplaceCatalog atomically swaps the whole catalog for a new snapshot.
	// Used by file imports, which deliver full snapshots.
	ReplaceCatalog(ctx context.Context, products []*models.Product) error

	// Search history. The history is owned by the application: the engine
	// and suggestion generator only ever read it.
	RecordSearch(ctx context.Context, query string) error
	RecentSearches(ctx context.Context, limit int) ([]string, error)

	Close() error
}
