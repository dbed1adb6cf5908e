package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"hoarder/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func renderGraph(graph *domain.Graph, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(graph, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case formatText, "":
		return renderText(graph), nil
	default:
		return "", errors.Newf("unknown format %q (expected %s or %s)", format, formatText, formatJSON)
	}
}

// renderText lists nodes with a tier swatch, then edges by label
func renderText(graph *domain.Graph) string {
	labels := make(map[int]string, len(graph.Nodes))
	var sb strings.Builder

	for _, n := range graph.Nodes {
		labels[n.ID] = n.Label
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(n.Color)).Render("●")
		fmt.Fprintf(&sb, "%s %4d %s\n", swatch, n.ID, n.Label)
	}
	if len(graph.Edges) > 0 {
		sb.WriteByte('\n')
	}
	for _, e := range graph.Edges {
		fmt.Fprintf(&sb, "%s -> %s\n", edgeLabel(labels, e.From), edgeLabel(labels, e.To))
	}
	return sb.String()
}

// edges may point at hidden orphans, which have no node
func edgeLabel(labels map[int]string, id int) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return fmt.Sprintf("#%d", id)
}
