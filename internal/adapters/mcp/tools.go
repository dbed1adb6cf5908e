package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"hoarder/internal/application"
	"hoarder/internal/application/commands"
	"hoarder/internal/domain"
	"hoarder/internal/ports"
)

// Deps are the collaborators the tools run against
type Deps struct {
	Catalog  ports.CatalogSource
	Similar  ports.SimilaritySource
	Cache    *application.SimilarityCache
	Pacer    ports.Pacer
	Settings application.Settings
	Logger   *zap.SugaredLogger
}

// tools serializes access to the cache; the server may dispatch calls
// concurrently.
type tools struct {
	mu   sync.Mutex
	deps Deps
}

// RegisterTools adds the hoarder tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	t := &tools{deps: deps}
	s.AddTool(pingTool(), pingHandler)
	s.AddTool(splitTool(), splitHandler)
	s.AddTool(similarTool(), t.similarHandler)
	s.AddTool(buildGraphTool(), t.buildGraphHandler)
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// --- split_artist ---

func splitTool() mcp.Tool {
	return mcp.NewTool("split_artist",
		mcp.WithDescription("Split a compound artist credit (\"A feat. B, C\") into individual artist names, one per line."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Raw artist credit as found in the library"),
		),
	)
}

func splitHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(strings.Join(domain.SplitArtistName(name), "\n")), nil
}

// --- similar_artists ---

func similarTool() mcp.Tool {
	return mcp.NewTool("similar_artists",
		mcp.WithDescription("List artists similar to the given one, at or above the configured match threshold. Uses the similarity cache and fetches from last.fm on a miss."),
		mcp.WithString("artist",
			mcp.Required(),
			mcp.Description("Artist name"),
		),
	)
}

func (t *tools) similarHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	artist, err := req.RequireString("artist")
	if err != nil {
		return toolError(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	lookup, err := commands.NewLookupSimilarCommand(t.deps.Similar, t.deps.Cache, t.deps.Settings, t.deps.Logger).
		Execute(ctx, artist)
	if err != nil {
		return toolError(err)
	}
	if len(lookup.Similar) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}

	var sb strings.Builder
	for _, s := range lookup.Similar {
		fmt.Fprintf(&sb, "%.3f %s\n", s.Match, s.Name)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- build_graph ---

func buildGraphTool() mcp.Tool {
	return mcp.NewTool("build_graph",
		mcp.WithDescription("Fetch the library catalog, expand it through similar artists and return the graph as JSON {nodes, edges}. Can take a while on a cold cache."),
		mcp.WithNumber("threshold",
			mcp.Description("Minimum match score in [0,1] (defaults to the configured value)"),
		),
		mcp.WithBoolean("show_orphans",
			mcp.Description("Keep library artists that have no similarity data"),
		),
		mcp.WithNumber("hops",
			mcp.Description("Expansion depth; 1 expands library artists only"),
		),
	)
}

func (t *tools) buildGraphHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings := t.deps.Settings
	settings.MatchThreshold = req.GetFloat("threshold", settings.MatchThreshold)
	settings.ShowOrphans = req.GetBool("show_orphans", settings.ShowOrphans)
	settings.Hops = req.GetInt("hops", settings.Hops)

	t.mu.Lock()
	defer t.mu.Unlock()

	run := commands.NewRunCommand(t.deps.Catalog, t.deps.Similar, t.deps.Cache, t.deps.Pacer, settings, t.deps.Logger)
	result, err := run.Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	data, err := json.Marshal(result.Graph)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
