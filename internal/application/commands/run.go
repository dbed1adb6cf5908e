package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hoarder/internal/application"
	"hoarder/internal/domain"
	"hoarder/internal/ports"
)

// RunResult contains everything produced by a full run
type RunResult struct {
	Registry *domain.Registry
	Graph    *domain.Graph
	Expand   *ExpandStats
	Duration time.Duration
}

// RunCommand pulls the catalog, expands it through the similarity source and
// builds the graph, as one logical operation.
type RunCommand struct {
	catalog  ports.CatalogSource
	similar  ports.SimilaritySource
	cache    *application.SimilarityCache
	pacer    ports.Pacer
	settings application.Settings
	logger   *zap.SugaredLogger

	// OnProgress is forwarded to the expansion step
	OnProgress func(ExpandProgress)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	catalog ports.CatalogSource,
	similar ports.SimilaritySource,
	cache *application.SimilarityCache,
	pacer ports.Pacer,
	settings application.Settings,
	log *zap.SugaredLogger,
) *RunCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RunCommand{
		catalog:  catalog,
		similar:  similar,
		cache:    cache,
		pacer:    pacer,
		settings: settings,
		logger:   log,
	}
}

// Validate checks the run settings
func (c *RunCommand) Validate() error {
	return c.settings.Validate()
}

// Execute runs ingestion, expansion and graph building. A catalog failure is
// returned marked with application.ErrCatalogFetch and no registry is
// produced. Similarity failures are absorbed; cancellation stops the
// expansion and is returned alongside nothing else.
func (c *RunCommand) Execute(ctx context.Context) (*RunResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	artists, err := c.catalog.GetArtists(ctx)
	if err != nil {
		return nil, application.CatalogFetchError(err)
	}

	registry := NewIngestCatalogCommand(domain.NewRegistry(), c.logger).Execute(artists)

	expand := NewExpandCommand(c.similar, c.cache, c.pacer, c.settings, c.logger)
	expand.OnProgress = c.OnProgress
	stats, err := expand.Execute(ctx, registry)
	if err != nil {
		return nil, err
	}

	graph := NewBuildGraphCommand(c.settings, c.logger).Execute(registry, c.cache)

	return &RunResult{
		Registry: registry,
		Graph:    graph,
		Expand:   stats,
		Duration: time.Since(start),
	}, nil
}
