package domain

import (
	"encoding/json"
	"fmt"
)

// Similarity is one "similar artist" result for a source artist
type Similarity struct {
	Name       string  `json:"artist"`
	ExternalID string  `json:"mbid"`
	Match      float64 `json:"match"`
}

// CacheEntry holds the similarity list fetched for one source artist.
// It encodes as a two element JSON array: ["name", [...similarities]].
type CacheEntry struct {
	Artist  string
	Similar []Similarity
}

// MarshalJSON encodes the entry as a [name, similarities] pair
func (e CacheEntry) MarshalJSON() ([]byte, error) {
	similar := e.Similar
	if similar == nil {
		similar = []Similarity{}
	}
	return json.Marshal([]any{e.Artist, similar})
}

// UnmarshalJSON decodes a [name, similarities] pair
func (e *CacheEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("cache entry: expected 2 elements, got %d", len(pair))
	}

	var artist string
	if err := json.Unmarshal(pair[0], &artist); err != nil {
		return fmt.Errorf("cache entry name: %w", err)
	}

	var similar []Similarity
	if err := json.Unmarshal(pair[1], &similar); err != nil {
		return fmt.Errorf("cache entry %q: %w", artist, err)
	}

	e.Artist = artist
	e.Similar = similar
	return nil
}

// AtOrAbove returns the similarities whose match score reaches threshold, in source order
func AtOrAbove(similar []Similarity, threshold float64) []Similarity {
	out := make([]Similarity, 0, len(similar))
	for _, s := range similar {
		if s.Match >= threshold {
			out = append(out, s)
		}
	}
	return out
}
