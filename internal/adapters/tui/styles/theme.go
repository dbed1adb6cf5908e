package styles

import (
	"github.com/charmbracelet/lipgloss"

	"hoarder/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#1F6FD6") // darkest tier blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// List styles
	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeID = lipgloss.NewStyle().
		Foreground(Muted).
		Width(6).
		Align(lipgloss.Right).
		MarginRight(1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)
)

// TierSwatch renders a colored dot for tier
func TierSwatch(tier domain.ColorTier) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color())).Render("●")
}

// TierLegend renders every tier with the album count it stands for
func TierLegend() string {
	labels := []string{"0", "1", "2", "3", "4", "5+"}
	var out string
	for i, tier := range domain.Tiers() {
		if i > 0 {
			out += "  "
		}
		out += TierSwatch(tier) + " " + MutedText.Render(labels[i])
	}
	return out
}
