package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hoarder/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToGraphMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("hoarder help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Artists of your library and the artists last.fm finds similar"))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine(GraphKeys.Up, GraphKeys.Down))
	b.WriteString(helpLine(GraphKeys.PrevPage, GraphKeys.NextPage))
	b.WriteString(helpLine(GraphKeys.Home, GraphKeys.End))
	b.WriteString("\n")

	b.WriteString(styles.Section.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(GraphKeys.Help))
	b.WriteString(helpLine(GraphKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.Section.Render("Colors (albums in library)"))
	b.WriteString("\n  ")
	b.WriteString(styles.TierLegend())
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// helpLine renders one or more bindings on a single line
func helpLine(bindings ...key.Binding) string {
	var keys, descs []string
	for _, kb := range bindings {
		keys = append(keys, kb.Help().Key)
		descs = append(descs, kb.Help().Desc)
	}
	return "  " + styles.HelpKey.Render(padRight(strings.Join(keys, " / "), 20)) +
		styles.HelpDesc.Render(strings.Join(descs, ", ")) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
