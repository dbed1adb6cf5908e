package application

import "time"

// Settings tune a single run. They are passed explicitly to each command
// rather than read from global state.
type Settings struct {
	// MatchThreshold is the minimum similarity score (inclusive) for an
	// artist to be discovered or an edge to be drawn.
	MatchThreshold float64
	// ShowOrphans keeps catalog artists without similarity data in the graph.
	ShowOrphans bool
	// CacheEnabled persists fetched similarities between runs.
	CacheEnabled bool

	// FetchLimit caps similarity results per artist while the registry is small.
	FetchLimit int
	// ReducedFetchLimit replaces FetchLimit once the registry holds
	// ReduceFetchAbove artists or more.
	ReducedFetchLimit int
	ReduceFetchAbove  int

	// RequestDelay is the pause after each similarity fetch.
	RequestDelay time.Duration
	// RequestsPerSecond, when positive, paces fetches with a token bucket
	// instead of the fixed RequestDelay.
	RequestsPerSecond float64

	// Hops bounds expansion depth. 1 expands catalog artists only; newly
	// discovered artists are not expanded themselves.
	Hops int
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		MatchThreshold:    0.65,
		ShowOrphans:       false,
		CacheEnabled:      true,
		FetchLimit:        25,
		ReducedFetchLimit: 10,
		ReduceFetchAbove:  500,
		RequestDelay:      250 * time.Millisecond,
		Hops:              1,
	}
}

// Validate checks the settings for values the traversal cannot work with
func (s Settings) Validate() error {
	if err := ValidateUnitInterval("graph.match_threshold", s.MatchThreshold); err != nil {
		return err
	}
	if err := ValidatePositive("expand.fetch_limit", s.FetchLimit); err != nil {
		return err
	}
	if err := ValidatePositive("expand.reduced_fetch_limit", s.ReducedFetchLimit); err != nil {
		return err
	}
	if err := ValidatePositive("expand.reduce_above", s.ReduceFetchAbove); err != nil {
		return err
	}
	if err := ValidatePositive("expand.hops", s.Hops); err != nil {
		return err
	}
	if s.RequestDelay < 0 {
		return &ValidationError{Field: "expand.request_delay", Message: "request delay cannot be negative"}
	}
	if s.RequestsPerSecond < 0 {
		return &ValidationError{Field: "expand.requests_per_second", Message: "requests per second cannot be negative"}
	}
	return nil
}

// FetchLimitFor returns the similarity result cap for a registry of the given size
func (s Settings) FetchLimitFor(registrySize int) int {
	if registrySize >= s.ReduceFetchAbove {
		return s.ReducedFetchLimit
	}
	return s.FetchLimit
}
