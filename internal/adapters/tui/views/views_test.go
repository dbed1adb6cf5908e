package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoarder/internal/application/commands"
	"hoarder/internal/domain"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleGraph() *domain.Graph {
	return &domain.Graph{
		Nodes: []domain.Node{
			{ID: 0, Label: "Boards of Canada", Tier: domain.TierTwo, Color: domain.TierTwo.Color()},
			{ID: 1, Label: "Tycho", Tier: domain.TierNone, Color: domain.TierNone.Color()},
			{ID: 2, Label: "Bibio", Tier: domain.TierNone, Color: domain.TierNone.Color()},
		},
		Edges: []domain.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 9}},
	}
}

func TestGraphModel_ShowsNeighborsOfSelection(t *testing.T) {
	m := NewGraphModel()
	m.SetSize(80, 40)
	m.SetGraph(sampleGraph())

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Boards of Canada", sel.Label)

	view := m.View()
	assert.Contains(t, view, "3 artists, 3 links")
	assert.Contains(t, view, "Similar to Boards of Canada")
	assert.Contains(t, view, "Tycho")
	assert.Contains(t, view, "#9 (hidden)")

	m.Update(keyMsg("j"))
	sel, _ = m.Selected()
	assert.Equal(t, "Tycho", sel.Label)
	assert.Contains(t, m.View(), "none above the threshold")

	m.Update(keyMsg("G"))
	sel, _ = m.Selected()
	assert.Equal(t, "Bibio", sel.Label)
}

func TestGraphModel_Empty(t *testing.T) {
	m := NewGraphModel()
	m.SetGraph(&domain.Graph{})

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No artists to show.")
}

func TestGraphModel_HelpAndQuit(t *testing.T) {
	m := NewGraphModel()
	m.SetGraph(sampleGraph())

	_, cmd := m.Update(keyMsg("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToHelpMsg{}, cmd())

	_, cmd = m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpModel_Close(t *testing.T) {
	m := NewHelpModel()
	assert.Contains(t, m.View(), "Navigation")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToGraphMsg{}, cmd())
}

func TestLoadingModel_Progress(t *testing.T) {
	m := NewLoadingModel()
	assert.Contains(t, m.View(), "Reading the library")

	m.Update(ProgressMsg(commands.ExpandProgress{
		Artist:       "Aphex Twin",
		Fetched:      true,
		Processed:    3,
		Queued:       7,
		RegistrySize: 21,
	}))

	assert.Equal(t, 3, m.Progress().Processed)
	view := m.View()
	assert.Contains(t, view, "Aphex Twin")
	assert.Contains(t, view, "last.fm")
	assert.Contains(t, view, "21")
}

func TestLoadingModel_Error(t *testing.T) {
	m := NewLoadingModel()
	m.SetMessage("fetching catalog: connection refused", true)

	view := m.View()
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, view, "to quit")
}
