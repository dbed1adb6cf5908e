package commands

import (
	"go.uber.org/zap"

	"hoarder/internal/application"
	"hoarder/internal/domain"
	"hoarder/internal/logger"
)

// BuildGraphCommand projects a registry and its similarity cache into a graph
type BuildGraphCommand struct {
	settings application.Settings
	logger   *zap.SugaredLogger
}

// NewBuildGraphCommand creates a new BuildGraphCommand
func NewBuildGraphCommand(settings application.Settings, log *zap.SugaredLogger) *BuildGraphCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &BuildGraphCommand{
		settings: settings,
		logger:   log.Named("graph"),
	}
}

// Execute builds the graph from scratch. It does not modify its inputs, so
// building twice from the same state yields the same graph.
func (c *BuildGraphCommand) Execute(registry *domain.Registry, cache *application.SimilarityCache) *domain.Graph {
	graph := &domain.Graph{
		Nodes: []domain.Node{},
		Edges: []domain.Edge{},
	}

	for _, a := range registry.Artists() {
		if c.isHiddenOrphan(a, cache) {
			continue
		}
		tier := domain.TierForAlbumCount(a.AlbumCount)
		graph.Nodes = append(graph.Nodes, domain.Node{
			ID:    a.ID,
			Label: a.Name,
			Tier:  tier,
			Color: tier.Color(),
		})
	}

	seen := make(map[domain.Edge]bool)
	for _, entry := range cache.Entries() {
		from, ok := registry.Get(entry.Artist)
		if !ok {
			c.logger.Warnw("cached artist missing from registry", logger.FieldArtist, entry.Artist)
			continue
		}

		for _, s := range domain.AtOrAbove(entry.Similar, c.settings.MatchThreshold) {
			to, ok := registry.Get(s.Name)
			if !ok {
				continue
			}
			edge := domain.Edge{From: from.ID, To: to.ID}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			graph.Edges = append(graph.Edges, edge)
		}
	}

	c.logger.Debugw("graph built", "nodes", len(graph.Nodes), "edges", len(graph.Edges))
	return graph
}

// isHiddenOrphan reports whether a catalog artist without similarity data
// should be left out. Discovered artists (no albums) always stay visible.
func (c *BuildGraphCommand) isHiddenOrphan(a domain.NamedArtist, cache *application.SimilarityCache) bool {
	if c.settings.ShowOrphans || a.AlbumCount == 0 {
		return false
	}
	similar, ok := cache.Get(a.Name)
	return !ok || len(similar) == 0
}
