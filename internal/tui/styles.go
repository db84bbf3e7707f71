// Package tui provides the bubbletea + lipgloss terminal UI: the Today
// reveal screen, the 30-day history, and the reminder settings.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
)

// Styles shared across tabs. Accent-dependent styles (header, card
// border) live on the Model and are computed from the configured accent
// color at creation.
var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	dateStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	charmTextStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	enabledStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	disabledStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	historyDateStyle = lipgloss.NewStyle().
				Foreground(colorGray)
)

// accentStyles are the accent-colored styles computed per Model.
type accentStyles struct {
	header lipgloss.Style
	card   lipgloss.Style
}

func newAccentStyles(accentColor string) accentStyles {
	accent := lipgloss.Color(accentColor)
	return accentStyles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3),
	}
}
