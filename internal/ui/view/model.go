// Package view browses run results in the terminal.
package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"annostat/internal/runner"
)

// Model is a Bubble Tea model over a finished run.
type Model struct {
	state   State
	table   table.Model
	noColor bool
}

// Options configures the viewer.
type Options struct {
	NoColor bool
}

// NewModel constructs a viewer for run results.
func NewModel(results runner.Results, opts Options) Model {
	state := NewState(results)
	height := len(state.Rows) + 1
	if height > 15 {
		height = 15
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForState(state)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{state: state, table: t, noColor: opts.NoColor}
}

// Init does nothing; results are static.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizes, quitting, and selection movement.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.table.SetHeight(max(min(typed.Height-12, len(m.state.Rows)+1), 2))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the index of the highlighted corpus.
func (m Model) Selected() int {
	return m.table.Cursor()
}

// View renders the header, table, selected corpus, and footer.
func (m Model) View() string {
	blocks := []string{renderHeader(m.state, m.noColor), m.table.View()}
	if selected := m.table.Cursor(); selected >= 0 && selected < len(m.state.Rows) {
		blocks = append(blocks, renderDetail(m.state.Rows[selected], m.noColor))
	}
	blocks = append(blocks, renderFooter(m.state, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
