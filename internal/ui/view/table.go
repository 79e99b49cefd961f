package view

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"annostat/internal/aggregate"
)

// defaultColumns returns the corpus table columns.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Corpus", Width: 32},
		{Title: "Kind", Width: 24},
		{Title: "Records", Width: 8},
		{Title: "Equivalent", Width: 16},
		{Title: "Not equivalent", Width: 16},
		{Title: "ChatGPT", Width: 9},
		{Title: "SO", Width: 9},
	}
}

// columnsForWidth widens the corpus column when the terminal allows it.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for _, column := range columns[1:] {
		fixed += column.Width + 2
	}
	if spare := width - fixed - 2; spare > columns[0].Width {
		columns[0].Width = spare
	}
	return columns
}

// tableStyles returns table styles for the viewer.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts viewer state into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		result := row.Result
		equivalent, notEquivalent := notApplicable, notApplicable
		if eq := result.Equivalence; eq != nil {
			equivalent = formatEquivalent(eq.Equivalent, eq.Total())
			notEquivalent = formatEquivalent(eq.NotEquivalent, eq.Total())
		}
		rows = append(rows, table.Row{
			formatName(row.Name),
			result.Kind,
			strconv.Itoa(result.Records),
			equivalent,
			notEquivalent,
			formatSource(result.Compilation, aggregate.SourceChatGPT),
			formatSource(result.Compilation, aggregate.SourceStackOverflow),
		})
	}
	return rows
}
