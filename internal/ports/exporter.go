package ports

import (
	"context"

	"hoarder/internal/domain"
)

// GraphExporter writes a built graph to an external system
type GraphExporter interface {
	Export(ctx context.Context, graph *domain.Graph) error
}
