package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"hoarder/internal/adapters/tui/styles"
	"hoarder/internal/application/commands"
)

// ProgressMsg carries one expansion step from the running traversal
type ProgressMsg commands.ExpandProgress

// LoadingModel shows a spinner and live counters while a run is in flight
type LoadingModel struct {
	ViewState
	spinner  spinner.Model
	progress commands.ExpandProgress
	steps    int
}

// NewLoadingModel creates a new loading view model
func NewLoadingModel() *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return &LoadingModel{spinner: s}
}

// Init starts the spinner
func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks and progress messages
func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ProgressMsg:
		m.progress = commands.ExpandProgress(msg)
		m.steps++
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Progress returns the last reported step
func (m *LoadingModel) Progress() commands.ExpandProgress {
	return m.progress
}

// View renders the loading screen
func (m *LoadingModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("hoarder"))
	b.WriteString("\n\n")

	if m.MessageErr {
		b.WriteString(m.renderMessage())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpDesc.Render("Press "))
		b.WriteString(styles.HelpKey.Render("q"))
		b.WriteString(styles.HelpDesc.Render(" to quit"))
		return styles.App.Render(b.String())
	}

	if m.steps == 0 {
		b.WriteString(m.spinner.View() + " Reading the library...")
		return styles.App.Render(b.String())
	}

	p := m.progress
	b.WriteString(m.spinner.View() + " Expanding similar artists")
	b.WriteString("\n\n")
	source := "cache"
	if p.Fetched {
		source = "last.fm"
	}
	fmt.Fprintf(&b, "  %s %s\n", styles.MutedText.Render("last:"), p.Artist+styles.MutedText.Render(" ("+source+")"))
	fmt.Fprintf(&b, "  %s %d\n", styles.MutedText.Render("processed:"), p.Processed)
	fmt.Fprintf(&b, "  %s %d\n", styles.MutedText.Render("queued:"), p.Queued)
	fmt.Fprintf(&b, "  %s %d\n", styles.MutedText.Render("artists:"), p.RegistrySize)

	return styles.App.Render(b.String())
}
