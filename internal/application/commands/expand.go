package commands

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hoarder/internal/application"
	"hoarder/internal/domain"
	"hoarder/internal/logger"
	"hoarder/internal/ports"
)

// ExpandStats summarizes one expansion
type ExpandStats struct {
	Processed  int
	Fetched    int
	CacheHits  int
	Failures   int
	Discovered int
	Duration   time.Duration
}

// ExpandProgress is reported after each dequeued artist
type ExpandProgress struct {
	Artist       string
	Fetched      bool
	Processed    int
	Queued       int
	RegistrySize int
}

// ExpandCommand grows a registry with artists similar to the ones it holds.
// The queue is processed strictly in order with at most one fetch in flight,
// so the registry, cache and queue need no locking.
type ExpandCommand struct {
	source   ports.SimilaritySource
	cache    *application.SimilarityCache
	pacer    ports.Pacer
	settings application.Settings
	logger   *zap.SugaredLogger

	// OnProgress, if set, is called synchronously after every queue step
	OnProgress func(ExpandProgress)
}

// NewExpandCommand creates a new ExpandCommand
func NewExpandCommand(
	source ports.SimilaritySource,
	cache *application.SimilarityCache,
	pacer ports.Pacer,
	settings application.Settings,
	log *zap.SugaredLogger,
) *ExpandCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if pacer == nil {
		pacer = application.NoPause{}
	}
	return &ExpandCommand{
		source:   source,
		cache:    cache,
		pacer:    pacer,
		settings: settings,
		logger:   log.Named("expand"),
	}
}

type queuedArtist struct {
	name  string
	depth int
}

// Execute runs the traversal over a snapshot of the registry's names.
// Fetch failures never stop it; only ctx cancellation does, in which case the
// stats so far and ctx's error are returned. Cache entries written before the
// cancellation stay persisted.
func (c *ExpandCommand) Execute(ctx context.Context, registry *domain.Registry) (*ExpandStats, error) {
	start := time.Now()
	stats := &ExpandStats{}
	defer func() { stats.Duration = time.Since(start) }()

	seeds := registry.Names()
	queue := make([]queuedArtist, 0, len(seeds))
	for _, name := range seeds {
		queue = append(queue, queuedArtist{name: name})
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		item := queue[0]
		queue = queue[1:]
		stats.Processed++

		fetched := false
		if !c.cache.Has(item.name) {
			if err := c.fetch(ctx, item.name, registry.Len(), stats); err != nil {
				return stats, err
			}
			fetched = true
			if err := c.pacer.Pause(ctx); err != nil {
				return stats, err
			}
		} else {
			stats.CacheHits++
		}

		similar, _ := c.cache.Get(item.name)
		for _, s := range domain.AtOrAbove(similar, c.settings.MatchThreshold) {
			if _, inserted := registry.Add(s.Name, s.ExternalID, 0); !inserted {
				continue
			}
			stats.Discovered++
			if item.depth+1 < c.settings.Hops {
				queue = append(queue, queuedArtist{name: s.Name, depth: item.depth + 1})
			}
		}

		if c.OnProgress != nil {
			c.OnProgress(ExpandProgress{
				Artist:       item.name,
				Fetched:      fetched,
				Processed:    stats.Processed,
				Queued:       len(queue),
				RegistrySize: registry.Len(),
			})
		}
	}

	c.logger.Infow("expansion finished",
		"processed", stats.Processed,
		"fetched", stats.Fetched,
		"cache_hits", stats.CacheHits,
		"failures", stats.Failures,
		"discovered", stats.Discovered,
		logger.FieldRegistry, registry.Len())
	return stats, nil
}

// fetch asks the source for name's similar artists and caches the answer.
// Only cancellation is returned as an error; every other failure is logged
// and treated as an empty list.
func (c *ExpandCommand) fetch(ctx context.Context, name string, registrySize int, stats *ExpandStats) error {
	limit := c.settings.FetchLimitFor(registrySize)
	stats.Fetched++

	similar, err := c.source.GetSimilarArtists(ctx, name, limit)
	if err == nil {
		if len(similar) > limit {
			similar = similar[:limit]
		}
		c.cache.Put(ctx, name, similar)
		c.logger.Debugw("fetched similar artists",
			logger.FieldArtist, name,
			logger.FieldCount, len(similar),
			logger.FieldLimit, limit)
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	stats.Failures++
	kind := "unknown"
	var srcErr *domain.SourceError
	if errors.As(err, &srcErr) {
		kind = srcErr.Kind.String()
		// Only a rejection of the artist itself is remembered.
		if srcErr.Kind == domain.SourceErrorRemote {
			c.cache.Put(ctx, name, nil)
		}
	}
	c.logger.Warnw("similar artists lookup failed",
		logger.FieldArtist, name,
		logger.FieldErrorKind, kind,
		logger.FieldError, err)
	return nil
}
