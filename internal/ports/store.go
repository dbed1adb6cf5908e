package ports

import (
	"context"

	"hoarder/internal/domain"
)

// SimilarityStore persists the similarity cache between runs.
// The store has a single writer; concurrent traversals must not share one.
type SimilarityStore interface {
	// Load returns the persisted entries in their saved order.
	// An empty store returns no entries and no error.
	Load(ctx context.Context) ([]domain.CacheEntry, error)

	// Save replaces the persisted entries
	Save(ctx context.Context, entries []domain.CacheEntry) error

	Close() error
}
