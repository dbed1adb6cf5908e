package application

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hoarder/internal/domain"
	"hoarder/internal/logger"
	"hoarder/internal/ports"
)

// SimilarityCache maps canonical artist names to their fetched similarity
// lists. Entries are append-only: once a name is cached it is never
// overwritten by a later fetch. When enabled, every new entry is written
// through to the persistent store so partial progress survives a crash.
type SimilarityCache struct {
	store   ports.SimilarityStore
	enabled bool
	order   []string
	entries map[string][]domain.Similarity
	logger  *zap.SugaredLogger
}

// NewSimilarityCache creates an empty cache. A nil store or enabled=false
// keeps the cache purely in memory.
func NewSimilarityCache(store ports.SimilarityStore, enabled bool, log *zap.SugaredLogger) *SimilarityCache {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SimilarityCache{
		store:   store,
		enabled: enabled && store != nil,
		entries: make(map[string][]domain.Similarity),
		logger:  log.Named("cache"),
	}
}

// LoadSimilarityCache creates a cache primed from the store. Load failures
// and corrupt payloads are logged and produce an empty cache.
func LoadSimilarityCache(ctx context.Context, store ports.SimilarityStore, enabled bool, log *zap.SugaredLogger) *SimilarityCache {
	c := NewSimilarityCache(store, enabled, log)
	if !c.enabled {
		return c
	}

	entries, err := store.Load(ctx)
	if err != nil {
		c.logger.Warnw("similarity cache unreadable, starting empty", logger.FieldError, err)
		return c
	}

	for _, e := range entries {
		c.insert(e.Artist, e.Similar)
	}
	c.logger.Debugw("similarity cache loaded", logger.FieldCount, len(c.order))
	return c
}

// Enabled reports whether writes reach the persistent store
func (c *SimilarityCache) Enabled() bool {
	return c.enabled
}

// Has reports whether name has a cached similarity list
func (c *SimilarityCache) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Get returns the cached similarity list for name
func (c *SimilarityCache) Get(name string) ([]domain.Similarity, bool) {
	similar, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(similar), true
}

// Put caches similar for name. It returns false without changing anything
// when name is already cached.
func (c *SimilarityCache) Put(ctx context.Context, name string, similar []domain.Similarity) bool {
	if !c.insert(name, similar) {
		return false
	}
	if err := c.persist(ctx); err != nil {
		c.logger.Warnw("similarity cache not persisted", logger.FieldArtist, name, logger.FieldError, err)
	}
	return true
}

// Forget drops the entry for name so the next expansion fetches it again
func (c *SimilarityCache) Forget(ctx context.Context, name string) error {
	if !c.Has(name) {
		return errors.Wrapf(ErrNotFound, "artist %q is not cached", name)
	}
	delete(c.entries, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	return c.persist(ctx)
}

// Clear drops every entry
func (c *SimilarityCache) Clear(ctx context.Context) error {
	c.order = nil
	c.entries = make(map[string][]domain.Similarity)
	return c.persist(ctx)
}

// Len returns the number of cached artists
func (c *SimilarityCache) Len() int {
	return len(c.order)
}

// Names returns cached artist names in insertion order
func (c *SimilarityCache) Names() []string {
	return slices.Clone(c.order)
}

// Entries returns every cached entry in insertion order
func (c *SimilarityCache) Entries() []domain.CacheEntry {
	out := make([]domain.CacheEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, domain.CacheEntry{Artist: name, Similar: slices.Clone(c.entries[name])})
	}
	return out
}

func (c *SimilarityCache) insert(name string, similar []domain.Similarity) bool {
	if c.Has(name) {
		return false
	}
	if similar == nil {
		similar = []domain.Similarity{}
	}
	c.entries[name] = slices.Clone(similar)
	c.order = append(c.order, name)
	return true
}

func (c *SimilarityCache) persist(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	if err := c.store.Save(ctx, c.Entries()); err != nil {
		return errors.Wrap(err, "saving similarity cache")
	}
	return nil
}
