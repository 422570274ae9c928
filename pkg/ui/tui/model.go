package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"igstats/pkg/models"
	"igstats/pkg/ui"
)

// Exporter writes the current results to a file
type Exporter interface {
	ExportProfiles(profiles []models.Profile, path string) error
}

type focusArea int

const (
	focusInput focusArea = iota
	focusTable
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusError
)

// columnWidths matches ui.Columns
var columnWidths = []int{20, 22, 11, 11, 10, 13, 13, 13, 9}

const tableHeight = 8

// Model is the interactive profile browser
type Model struct {
	lookup     ui.ProfileLookup
	exporter   Exporter
	exportPath string

	// UI components
	input   textinput.Model
	table   table.Model
	spinner spinner.Model

	// Results
	profiles []models.Profile

	// UI state
	focus       focusArea
	loading     bool
	status      string
	statusLevel statusLevel
	width       int
	height      int
	showHelp    bool
}

// NewModel creates a browser that resolves queries with lookup and writes
// exports to exportPath
func NewModel(lookup ui.ProfileLookup, exporter Exporter, exportPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "handle, or handle1,handle2"
	ti.Prompt = promptStyle.Render("@ ")
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	columns := make([]table.Column, len(ui.Columns))
	for i, title := range ui.Columns {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(tableHeight),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(neonCyan)

	return Model{
		lookup:     lookup,
		exporter:   exporter,
		exportPath: exportPath,
		input:      ti,
		table:      t,
		spinner:    s,
		focus:      focusInput,
		status:     "Enter a handle and press enter",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetProfiles replaces the results and selects the first row
func (m *Model) SetProfiles(profiles []models.Profile) {
	m.profiles = profiles

	rows := make([]table.Row, 0, len(profiles))
	for _, r := range ui.ProfileRows(profiles) {
		rows = append(rows, table.Row(r))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Profiles returns the current results
func (m Model) Profiles() []models.Profile {
	return m.profiles
}

// Selected returns the profile under the table cursor, or nil
func (m Model) Selected() *models.Profile {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.profiles) {
		return nil
	}
	return &m.profiles[i]
}

// Status returns the current status line text
func (m Model) Status() string {
	return m.status
}

// Loading reports whether a search or export is in flight
func (m Model) Loading() bool {
	return m.loading
}

func (m *Model) setStatus(level statusLevel, msg string) {
	m.statusLevel = level
	m.status = msg
}

// setFocus moves keyboard focus between the input and the table
func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.table.Blur()
		m.input.Focus()
		return
	}
	m.input.Blur()
	m.table.Focus()
}
