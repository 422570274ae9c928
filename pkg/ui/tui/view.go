package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"igstats/pkg/ui"
)

const logo = `╦╔═╗╔═╗╔╦╗╔═╗╔╦╗╔═╗
║║ ╦╚═╗ ║ ╠═╣ ║ ╚═╗
╩╚═╝╚═╝ ╩ ╩ ╩ ╩ ╚═╝`

// View renders the entire TUI
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderLogo())
	sections = append(sections, m.renderInput())
	sections = append(sections, m.renderStatus())
	sections = append(sections, m.renderResults())

	if details := m.renderDetails(); details != "" {
		sections = append(sections, details)
	}

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, helpStyle.Render("Press ? for help"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderLogo() string {
	tagline := dimStyle.Render("instagram profile statistics via HikerAPI")
	return lipgloss.JoinHorizontal(lipgloss.Center, logoStyle.Render(logo), " ", tagline)
}

func (m Model) renderInput() string {
	style := panelStyle
	if m.focus == focusInput {
		style = focusedPanelStyle
	}
	return style.Render(titleStyle.Render("LOOKUP") + "\n" + m.input.View())
}

func (m Model) renderStatus() string {
	text := statusStyle(m.statusLevel).Render(m.status)
	if m.loading {
		return " " + m.spinner.View() + " " + text
	}
	return " " + text
}

func (m Model) renderResults() string {
	style := panelStyle
	if m.focus == focusTable {
		style = focusedPanelStyle
	}

	title := titleStyle.Render(fmt.Sprintf("RESULTS (%d)", len(m.profiles)))
	if len(m.profiles) == 0 {
		return style.Render(title + "\n" + dimStyle.Render("No results yet"))
	}
	return style.Render(title + "\n" + m.table.View())
}

func (m Model) renderDetails() string {
	p := m.Selected()
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("DETAILS"))
	for _, line := range ui.DetailLines(p) {
		b.WriteString("\n")
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-13s", line[0])))
		b.WriteString(" ")
		b.WriteString(line[1])
	}
	return panelStyle.Render(b.String())
}

func (m Model) renderHelp() string {
	keys := [][2]string{
		{"enter", "look up handle(s)"},
		{"tab", "switch between input and results"},
		{"↑/↓", "move through results"},
		{"ctrl+e", "export results to " + m.exportPath},
		{"?", "toggle help"},
		{"esc/ctrl+c", "quit"},
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, keyStyle.Render(fmt.Sprintf("%-10s", k[0]))+" "+dimStyle.Render(k[1]))
	}
	return helpStyle.Render(strings.Join(lines, "\n"))
}
