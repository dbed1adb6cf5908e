package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hoarder/internal/adapters/tui/styles"
	"hoarder/internal/domain"
)

// GraphKeyMap defines key bindings for the node list
type GraphKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Home     key.Binding
	End      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var GraphKeys = GraphKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// rows taken by title, detail pane, legend and status bar
const graphChrome = 14

// GraphModel lists graph nodes colored by tier with the selected node's
// outgoing links
type GraphModel struct {
	ViewState
	graph     *domain.Graph
	labels    map[int]string
	neighbors map[int][]int
	pager     *Paginator
}

// NewGraphModel creates an empty graph view
func NewGraphModel() *GraphModel {
	return &GraphModel{
		graph: &domain.Graph{},
		pager: NewPaginator(10),
	}
}

// SetGraph replaces the displayed graph
func (m *GraphModel) SetGraph(g *domain.Graph) {
	m.graph = g
	m.labels = make(map[int]string, len(g.Nodes))
	for _, n := range g.Nodes {
		m.labels[n.ID] = n.Label
	}
	m.neighbors = make(map[int][]int)
	for _, e := range g.Edges {
		m.neighbors[e.From] = append(m.neighbors[e.From], e.To)
	}
	m.pager.SetTotal(len(g.Nodes))
	m.pager.Home()
}

// SetSize updates the view dimensions and page size
func (m *GraphModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(height-graphChrome, 5))
}

// Selected returns the node under the cursor
func (m *GraphModel) Selected() (domain.Node, bool) {
	if len(m.graph.Nodes) == 0 {
		return domain.Node{}, false
	}
	return m.graph.Nodes[m.pager.Cursor()], true
}

// Init implements tea.Model
func (m *GraphModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys
func (m *GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, GraphKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, GraphKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		case key.Matches(msg, GraphKeys.Up):
			m.pager.CursorUp()
		case key.Matches(msg, GraphKeys.Down):
			m.pager.CursorDown()
		case key.Matches(msg, GraphKeys.PrevPage):
			m.pager.PrevPage()
		case key.Matches(msg, GraphKeys.NextPage):
			m.pager.NextPage()
		case key.Matches(msg, GraphKeys.Home):
			m.pager.Home()
		case key.Matches(msg, GraphKeys.End):
			m.pager.End()
		}
	}
	return m, nil
}

// View renders the node list
func (m *GraphModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("hoarder"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d artists, %d links", len(m.graph.Nodes), len(m.graph.Edges))))
	b.WriteString("\n\n")

	if len(m.graph.Nodes) == 0 {
		b.WriteString(styles.MutedText.Render("No artists to show."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		n := m.graph.Nodes[i]
		row := styles.NodeID.Render(fmt.Sprint(n.ID)) + styles.TierSwatch(n.Tier) + " " + n.Label
		if i == m.pager.Cursor() {
			row = styles.NodeID.Render(fmt.Sprint(n.ID)) + styles.TierSwatch(n.Tier) + " " + styles.NodeSelected.Render(n.Label)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if sel, ok := m.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(styles.Section.Render("Similar to " + sel.Label))
		b.WriteString("\n")
		targets := m.neighbors[sel.ID]
		if len(targets) == 0 {
			b.WriteString(styles.MutedText.Render("  none above the threshold"))
			b.WriteString("\n")
		}
		for _, id := range targets {
			label, ok := m.labels[id]
			if !ok {
				label = fmt.Sprintf("#%d (hidden)", id)
			}
			b.WriteString("  " + label + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.TierLegend())
	b.WriteString("\n")
	if msg := m.renderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString(styles.StatusBar.Render(fmt.Sprintf("page %d/%d  ? help  q quit", m.pager.CurrentPage(), m.pager.TotalPages())))

	return styles.App.Render(b.String())
}
