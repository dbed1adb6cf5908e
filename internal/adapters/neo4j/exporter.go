// Package neo4j writes a similarity graph into a Neo4j database.
package neo4j

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"hoarder/internal/domain"
	"hoarder/internal/ports"
)

// Runner executes a single Cypher statement
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

// Executor is the driver-backed Runner
type Executor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

// NewExecutor connects to the database at uri
func NewExecutor(uri, username, password, dbName string) (*Executor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, errors.Wrap(err, "creating neo4j driver")
	}
	return &Executor{Driver: driver, DBName: dbName}, nil
}

// Verify checks connectivity
func (e *Executor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// Run executes query in its own managed transaction
func (e *Executor) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, e.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName))
	if err != nil {
		return nil, errors.Wrap(err, "executing neo4j query")
	}
	return result, nil
}

// Close releases the driver
func (e *Executor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

const (
	mergeNodesQuery = `
UNWIND $nodes AS n
MERGE (a:Artist {name: n.name})
SET a.id = n.id, a.tier = n.tier, a.color = n.color`

	mergeEdgesQuery = `
UNWIND $edges AS e
MATCH (a:Artist {name: e.from})
MATCH (b:Artist {name: e.to})
MERGE (a)-[:SIMILAR_TO]->(b)`
)

// Exporter implements ports.GraphExporter
type Exporter struct {
	runner Runner
	logger *zap.SugaredLogger
}

// Ensure Exporter implements GraphExporter
var _ ports.GraphExporter = (*Exporter)(nil)

// NewExporter creates an exporter on top of runner
func NewExporter(runner Runner, log *zap.SugaredLogger) *Exporter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Exporter{runner: runner, logger: log.Named("neo4j")}
}

// Export merges every node and edge. Artists are keyed by name, since ids
// only hold for one run; id is refreshed as a property. Edges whose ends are
// not among the graph's nodes are skipped.
func (e *Exporter) Export(ctx context.Context, graph *domain.Graph) error {
	nodes := make([]map[string]any, 0, len(graph.Nodes))
	names := make(map[int]string, len(graph.Nodes))
	for _, n := range graph.Nodes {
		names[n.ID] = n.Label
		nodes = append(nodes, map[string]any{
			"id":    int64(n.ID),
			"name":  n.Label,
			"tier":  int64(n.Tier),
			"color": n.Color,
		})
	}
	edges := make([]map[string]any, 0, len(graph.Edges))
	for _, ed := range graph.Edges {
		from, okFrom := names[ed.From]
		to, okTo := names[ed.To]
		if !okFrom || !okTo {
			continue
		}
		edges = append(edges, map[string]any{"from": from, "to": to})
	}

	if len(nodes) > 0 {
		if _, err := e.runner.Run(ctx, mergeNodesQuery, map[string]any{"nodes": nodes}); err != nil {
			return errors.Wrap(err, "merging artist nodes")
		}
	}
	if len(edges) > 0 {
		if _, err := e.runner.Run(ctx, mergeEdgesQuery, map[string]any{"edges": edges}); err != nil {
			return errors.Wrap(err, "merging similarity edges")
		}
	}

	e.logger.Infow("graph exported", "nodes", len(nodes), "edges", len(edges))
	return nil
}
