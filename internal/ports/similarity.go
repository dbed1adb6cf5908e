package ports

import (
	"context"

	"hoarder/internal/domain"
)

// SimilaritySource looks up artists similar to a given one.
// Implementations return at most limit results and report failures as
// *domain.SourceError.
type SimilaritySource interface {
	GetSimilarArtists(ctx context.Context, artist string, limit int) ([]domain.Similarity, error)
}
