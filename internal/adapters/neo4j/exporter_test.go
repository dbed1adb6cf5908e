package neo4j

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoarder/internal/domain"
)

type call struct {
	query  string
	params map[string]any
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(_ context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	f.calls = append(f.calls, call{query: query, params: params})
	if f.err != nil {
		return nil, f.err
	}
	return &neo4j.EagerResult{}, nil
}

func TestExporter_Export(t *testing.T) {
	runner := &fakeRunner{}
	graph := &domain.Graph{
		Nodes: []domain.Node{
			{ID: 0, Label: "A", Tier: domain.TierTwo, Color: "#a9cdfb"},
			{ID: 2, Label: "C", Tier: domain.TierNone, Color: "#f5f5f5"},
		},
		Edges: []domain.Edge{{From: 0, To: 2}},
	}

	require.NoError(t, NewExporter(runner, nil).Export(context.Background(), graph))
	require.Len(t, runner.calls, 2)

	assert.Equal(t, mergeNodesQuery, runner.calls[0].query)
	assert.Equal(t, []map[string]any{
		{"id": int64(0), "name": "A", "tier": int64(2), "color": "#a9cdfb"},
		{"id": int64(2), "name": "C", "tier": int64(0), "color": "#f5f5f5"},
	}, runner.calls[0].params["nodes"])

	assert.Equal(t, mergeEdgesQuery, runner.calls[1].query)
	assert.Equal(t, []map[string]any{{"from": "A", "to": "C"}}, runner.calls[1].params["edges"])
}

func TestExporter_KeysArtistsByName(t *testing.T) {
	assert.Contains(t, mergeNodesQuery, "MERGE (a:Artist {name: n.name})")
	assert.Contains(t, mergeNodesQuery, "SET a.id = n.id")
	assert.NotContains(t, mergeNodesQuery, "{id:")
	assert.Contains(t, mergeEdgesQuery, "MATCH (a:Artist {name: e.from})")
	assert.Contains(t, mergeEdgesQuery, "MATCH (b:Artist {name: e.to})")
}

func TestExporter_ReexportAfterCatalogChange(t *testing.T) {
	runner := &fakeRunner{}
	exporter := NewExporter(runner, nil)

	first := &domain.Graph{
		Nodes: []domain.Node{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}},
		Edges: []domain.Edge{{From: 0, To: 1}},
	}
	second := &domain.Graph{
		Nodes: []domain.Node{{ID: 0, Label: "Z"}, {ID: 1, Label: "A"}},
		Edges: []domain.Edge{{From: 1, To: 0}},
	}
	require.NoError(t, exporter.Export(context.Background(), first))
	require.NoError(t, exporter.Export(context.Background(), second))
	require.Len(t, runner.calls, 4)

	assert.Equal(t, []map[string]any{{"from": "A", "to": "B"}}, runner.calls[1].params["edges"])
	assert.Equal(t, []map[string]any{{"from": "A", "to": "Z"}}, runner.calls[3].params["edges"])
}

func TestExporter_SkipsEdgesToHiddenNodes(t *testing.T) {
	runner := &fakeRunner{}
	graph := &domain.Graph{
		Nodes: []domain.Node{{ID: 0, Label: "A"}},
		Edges: []domain.Edge{{From: 0, To: 3}},
	}

	require.NoError(t, NewExporter(runner, nil).Export(context.Background(), graph))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, mergeNodesQuery, runner.calls[0].query)
}

func TestExporter_EmptyGraph(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, NewExporter(runner, nil).Export(context.Background(), &domain.Graph{}))
	assert.Empty(t, runner.calls)
}

func TestExporter_StopsOnNodeFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("unavailable")}
	graph := &domain.Graph{
		Nodes: []domain.Node{{ID: 0, Label: "A"}, {ID: 1, Label: "B"}},
		Edges: []domain.Edge{{From: 0, To: 1}},
	}

	err := NewExporter(runner, nil).Export(context.Background(), graph)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merging artist nodes")
	assert.Len(t, runner.calls, 1)
}
