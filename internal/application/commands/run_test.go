package commands

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoarder/internal/application"
	"hoarder/internal/application/apptest"
	"hoarder/internal/domain"
)

func TestRunCommand_Execute(t *testing.T) {
	ctx := context.Background()
	catalog := &apptest.CatalogSource{Artists: []domain.CatalogArtist{
		{Name: "A & B", ExternalID: "m1", AlbumCount: 2},
	}}
	source := &apptest.SimilaritySource{Responses: map[string][]domain.Similarity{
		"A": {{Name: "C", ExternalID: "m2", Match: 0.9}},
		"B": {},
	}}
	settings := expandSettings(0.85)
	cache := application.LoadSimilarityCache(ctx, &apptest.MemoryStore{}, true, nopLogger)

	var progress int
	cmd := NewRunCommand(catalog, source, cache, &apptest.Pacer{}, settings, nopLogger)
	cmd.OnProgress = func(ExpandProgress) { progress++ }

	result, err := cmd.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, catalog.Calls)
	assert.Equal(t, 2, progress)
	assert.Equal(t, []string{"A", "B", "C"}, result.Registry.Names())
	assert.Len(t, result.Graph.Nodes, 3)
	assert.Equal(t, []domain.Edge{{From: 0, To: 2}}, result.Graph.Edges)
	assert.Equal(t, 2, result.Expand.Fetched)
}

func TestRunCommand_SecondRunUsesCache(t *testing.T) {
	ctx := context.Background()
	catalog := &apptest.CatalogSource{Artists: []domain.CatalogArtist{{Name: "A", AlbumCount: 1}}}
	source := &apptest.SimilaritySource{Responses: map[string][]domain.Similarity{
		"A": {{Name: "B", Match: 0.9}},
	}}
	store := &apptest.MemoryStore{}
	settings := expandSettings(0.5)

	first, err := NewRunCommand(catalog, source, application.LoadSimilarityCache(ctx, store, true, nopLogger),
		nil, settings, nopLogger).Execute(ctx)
	require.NoError(t, err)

	second, err := NewRunCommand(catalog, source, application.LoadSimilarityCache(ctx, store, true, nopLogger),
		nil, settings, nopLogger).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, source.CallCount("A"))
	assert.Equal(t, first.Graph, second.Graph)
}

func TestRunCommand_CatalogFailure(t *testing.T) {
	catalog := &apptest.CatalogSource{Err: &domain.SourceError{Source: "navidrome", Kind: domain.SourceErrorTransport, Err: errors.New("refused")}}
	source := &apptest.SimilaritySource{}

	result, err := NewRunCommand(catalog, source, newMemoryCache(nil), nil, expandSettings(0.5), nopLogger).
		Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, application.ErrCatalogFetch))
	assert.Empty(t, source.Calls)
}

func TestRunCommand_InvalidSettings(t *testing.T) {
	settings := expandSettings(1.5)
	catalog := &apptest.CatalogSource{}

	_, err := NewRunCommand(catalog, &apptest.SimilaritySource{}, newMemoryCache(nil), nil, settings, nopLogger).
		Execute(context.Background())

	var verr *application.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "graph.match_threshold", verr.Field)
	assert.Zero(t, catalog.Calls)
}
