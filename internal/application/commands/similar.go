package commands

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hoarder/internal/application"
	"hoarder/internal/domain"
	"hoarder/internal/logger"
	"hoarder/internal/ports"
)

// SimilarLookup is the answer for a single artist
type SimilarLookup struct {
	Artist    string
	Similar   []domain.Similarity
	FromCache bool
}

// LookupSimilarCommand answers "who is similar to X" from the cache,
// fetching and caching on a miss.
type LookupSimilarCommand struct {
	source   ports.SimilaritySource
	cache    *application.SimilarityCache
	settings application.Settings
	logger   *zap.SugaredLogger
}

// NewLookupSimilarCommand creates a new LookupSimilarCommand
func NewLookupSimilarCommand(
	source ports.SimilaritySource,
	cache *application.SimilarityCache,
	settings application.Settings,
	log *zap.SugaredLogger,
) *LookupSimilarCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LookupSimilarCommand{
		source:   source,
		cache:    cache,
		settings: settings,
		logger:   log.Named("similar"),
	}
}

// Execute returns the similarity list of artist at or above the configured
// threshold. A remote rejection is cached as an empty list like during
// expansion; other failures are returned and nothing is cached.
func (c *LookupSimilarCommand) Execute(ctx context.Context, artist string) (*SimilarLookup, error) {
	if err := application.ValidateRequired("artist", artist); err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(artist); ok {
		return &SimilarLookup{
			Artist:    artist,
			Similar:   domain.AtOrAbove(cached, c.settings.MatchThreshold),
			FromCache: true,
		}, nil
	}

	limit := c.settings.FetchLimit
	similar, err := c.source.GetSimilarArtists(ctx, artist, limit)
	if err != nil {
		var srcErr *domain.SourceError
		if errors.As(err, &srcErr) && srcErr.Kind == domain.SourceErrorRemote {
			c.cache.Put(ctx, artist, nil)
		}
		c.logger.Debugw("lookup failed", logger.FieldArtist, artist, logger.FieldError, err)
		return nil, errors.Wrapf(err, "looking up artists similar to %q", artist)
	}
	if len(similar) > limit {
		similar = similar[:limit]
	}
	c.cache.Put(ctx, artist, similar)

	return &SimilarLookup{
		Artist:  artist,
		Similar: domain.AtOrAbove(similar, c.settings.MatchThreshold),
	}, nil
}
