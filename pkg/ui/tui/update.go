package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"igstats/pkg/models"
	"igstats/pkg/ui"
)

// searchResultMsg carries the outcome of a lookup
type searchResultMsg struct {
	query    string
	profiles []models.Profile
	err      error
}

// exportResultMsg carries the outcome of a CSV export
type exportResultMsg struct {
	path  string
	count int
	err   error
}

// searchCmd resolves query off the UI goroutine
func searchCmd(lookup ui.ProfileLookup, query string) tea.Cmd {
	return func() tea.Msg {
		profiles, err := ui.Resolve(lookup, query)
		return searchResultMsg{query: query, profiles: profiles, err: err}
	}
}

// exportCmd writes profiles to path off the UI goroutine
func exportCmd(exporter Exporter, profiles []models.Profile, path string) tea.Cmd {
	snapshot := make([]models.Profile, len(profiles))
	copy(snapshot, profiles)
	return func() tea.Msg {
		err := exporter.ExportProfiles(snapshot, path)
		return exportResultMsg{path: path, count: len(snapshot), err: err}
	}
}

// Update handles all UI updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 4)
		return m, nil

	case searchResultMsg:
		m.loading = false
		if msg.err != nil {
			m.SetProfiles(nil)
			m.setStatus(statusError, msg.err.Error())
			return m, nil
		}
		m.SetProfiles(msg.profiles)
		m.setStatus(statusSuccess, fmt.Sprintf("Found %d profile(s) for %q", len(msg.profiles), msg.query))
		m.setFocus(focusTable)
		return m, nil

	case exportResultMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(statusError, fmt.Sprintf("Export failed: %v", msg.err))
			return m, nil
		}
		m.setStatus(statusSuccess, fmt.Sprintf("Exported %d profile(s) to %s", msg.count, msg.path))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "tab":
		if m.focus == focusInput {
			m.setFocus(focusTable)
		} else {
			m.setFocus(focusInput)
		}
		return m, nil

	case "ctrl+e":
		return m.startExport()

	case "enter":
		if m.focus == focusInput {
			return m.startSearch()
		}
	}

	return m.updateFocused(msg)
}

func (m *Model) startSearch() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.setStatus(statusError, "Please enter a handle")
		return m, nil
	}

	m.loading = true
	m.SetProfiles(nil)
	m.setStatus(statusInfo, fmt.Sprintf("Looking up %s...", query))
	return m, tea.Batch(searchCmd(m.lookup, query), m.spinner.Tick)
}

func (m *Model) startExport() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if len(m.profiles) == 0 {
		m.setStatus(statusError, "No profiles to export")
		return m, nil
	}
	if m.exporter == nil {
		m.setStatus(statusError, "Export is not available")
		return m, nil
	}

	m.loading = true
	m.setStatus(statusInfo, fmt.Sprintf("Exporting to %s...", m.exportPath))
	return m, tea.Batch(exportCmd(m.exporter, m.profiles, m.exportPath), m.spinner.Tick)
}

// updateFocused forwards a message to the focused component
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}
