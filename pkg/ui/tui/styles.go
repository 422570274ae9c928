package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Cyberpunk color palette
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	neonOrange  = lipgloss.Color("#FF6700")
	darkBg      = lipgloss.Color("#0A0E27")
	dimWhite    = lipgloss.Color("#B0B0B0")
	errorRed    = lipgloss.Color("#FF0000")

	logoStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true).
			Padding(0, 1)

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonMagenta).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(neonCyan)

	titleStyle = lipgloss.NewStyle().
			Background(neonMagenta).
			Foreground(darkBg).
			Bold(true).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true)

	// Status styles
	infoStyle = lipgloss.NewStyle().
			Foreground(neonYellow)

	successStyle = lipgloss.NewStyle().
			Foreground(neonGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorRed).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 0, 0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(neonOrange).
			Bold(true)
)

// tableStyles returns the results table styles
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(neonMagenta).
		BorderBottom(true).
		Foreground(neonCyan).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(darkBg).
		Background(neonCyan).
		Bold(false)
	return s
}

// statusStyle returns the style for a status level
func statusStyle(level statusLevel) lipgloss.Style {
	switch level {
	case statusError:
		return errorStyle
	case statusSuccess:
		return successStyle
	default:
		return infoStyle
	}
}
