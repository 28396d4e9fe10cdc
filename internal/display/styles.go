package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is the warm amber used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fcd34d"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6a96b")).
			Italic(true)

	// Primary text, light zinc for summaries and steps.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text, dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24")).
			Bold(true)

	selectedTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1c1917")).
				Background(lipgloss.Color("#fbbf24")).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fde68a")).
				Bold(true)

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	// Errors, soft coral.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#22c55e")).
			PaddingLeft(1)

	tipsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fcd34d")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#92400e")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#fbbf24"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1c1917")).
			Background(lipgloss.Color("#d6a96b")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))
)
