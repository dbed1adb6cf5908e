// Package apptest provides in-memory fakes of the ports for tests.
package apptest

import (
	"context"
	"encoding/json"
	"sync"

	"hoarder/internal/domain"
)

// MemoryStore is a ports.SimilarityStore that keeps the serialized payload in memory.
// It round-trips through JSON so tests exercise the persisted format.
type MemoryStore struct {
	mu      sync.Mutex
	Payload []byte
	Saves   int
	LoadErr error
	SaveErr error
}

// Load decodes the stored payload
func (s *MemoryStore) Load(_ context.Context) ([]domain.CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if len(s.Payload) == 0 {
		return nil, nil
	}
	var entries []domain.CacheEntry
	if err := json.Unmarshal(s.Payload, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save encodes entries into the payload
func (s *MemoryStore) Save(_ context.Context, entries []domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	s.Payload = data
	s.Saves++
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

// SimilaritySource is a scripted ports.SimilaritySource that records calls
type SimilaritySource struct {
	mu        sync.Mutex
	Responses map[string][]domain.Similarity
	Errors    map[string]error
	Calls     []string
	Limits    []int
}

// GetSimilarArtists returns the scripted response for artist, capped at limit
func (s *SimilaritySource) GetSimilarArtists(_ context.Context, artist string, limit int) ([]domain.Similarity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, artist)
	s.Limits = append(s.Limits, limit)

	if err, ok := s.Errors[artist]; ok {
		return nil, err
	}
	out := s.Responses[artist]
	if len(out) > limit {
		out = out[:limit]
	}
	return append([]domain.Similarity(nil), out...), nil
}

// CallCount returns how many times artist was fetched
func (s *SimilaritySource) CallCount(artist string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.Calls {
		if c == artist {
			n++
		}
	}
	return n
}

// CatalogSource is a scripted ports.CatalogSource
type CatalogSource struct {
	Artists []domain.CatalogArtist
	Err     error
	Calls   int
}

// GetArtists returns the scripted catalog
func (s *CatalogSource) GetArtists(_ context.Context) ([]domain.CatalogArtist, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]domain.CatalogArtist(nil), s.Artists...), nil
}

// Pacer counts pauses without sleeping
type Pacer struct {
	mu     sync.Mutex
	Pauses int
	Err    error
}

// Pause records the call
func (p *Pacer) Pause(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Pauses++
	if p.Err != nil {
		return p.Err
	}
	return ctx.Err()
}

// Count returns the number of pauses so far
func (p *Pacer) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Pauses
}
