package commands

import (
	"go.uber.org/zap"

	"hoarder/internal/domain"
	"hoarder/internal/logger"
)

// IngestCatalogCommand turns a catalog snapshot into the run's artist registry
type IngestCatalogCommand struct {
	registry *domain.Registry
	logger   *zap.SugaredLogger
}

// NewIngestCatalogCommand creates a new IngestCatalogCommand that fills registry
func NewIngestCatalogCommand(registry *domain.Registry, log *zap.SugaredLogger) *IngestCatalogCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &IngestCatalogCommand{
		registry: registry,
		logger:   log.Named("ingest"),
	}
}

// Execute rebuilds the registry from artists. Co-credited names are split;
// album counts of names seen more than once are summed while the first
// external id is kept.
func (c *IngestCatalogCommand) Execute(artists []domain.CatalogArtist) *domain.Registry {
	c.registry.Reset()

	for _, entry := range artists {
		for _, name := range domain.SplitArtistName(entry.Name) {
			if name == "" {
				c.logger.Debugw("skipping blank catalog artist", "external_id", entry.ExternalID)
				continue
			}
			if _, inserted := c.registry.Add(name, entry.ExternalID, entry.AlbumCount); !inserted {
				c.registry.AddAlbums(name, entry.AlbumCount)
			}
		}
	}

	c.logger.Infow("catalog ingested",
		logger.FieldCount, len(artists),
		logger.FieldRegistry, c.registry.Len())
	return c.registry
}
