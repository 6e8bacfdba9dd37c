package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Brand — warm amber for the product name.
	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fcd34d")).
			Bold(true)

	// Page titles — soft mint.
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Primary text — light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints, metadata, footers.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Accent — soft sky blue for interactive affordances.
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Urgent — soft coral for errors and alerts.
	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	// Success — soft mint for confirmations.
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#86efac"))

	// Liked/favorited markers.
	likedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9a8d4"))

	// Selection cursor in lists.
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	// Card frame for the selected list entry.
	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("#fde68a")).
				PaddingLeft(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3f3f46")).
			PaddingLeft(1)

	// Form field labels.
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// Status bar across the top.
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa"))

	// Badge for the unread notification count.
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	// Overlay panels (forms, confirm modal, notifications).
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 2)
)
