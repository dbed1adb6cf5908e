package ports

import (
	"context"

	"hoarder/internal/domain"
)

// CatalogSource lists the artists of a music library.
// Failures are reported as *domain.SourceError.
type CatalogSource interface {
	GetArtists(ctx context.Context) ([]domain.CatalogArtist, error)
}
