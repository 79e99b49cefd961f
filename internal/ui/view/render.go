package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"annostat/internal/aggregate"
	"annostat/internal/runner"
	"annostat/internal/summary"
)

const barWidth = 30

// renderHeader renders the run header line.
func renderHeader(state State, noColor bool) string {
	totals := state.Totals()
	line := "Run " + state.RunID +
		" | Corpora: " + strconv.Itoa(totals.Corpora) +
		" | Records: " + strconv.Itoa(totals.Records)
	if judged := totals.Equivalent + totals.NotEquivalent; judged > 0 {
		line += " | Equivalent: " + formatEquivalent(totals.Equivalent, judged)
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderDetail renders bar panels for one corpus.
func renderDetail(row Row, noColor bool) string {
	result := row.Result
	lines := []string{stylize(result.Path, noColor, lipgloss.Color("252"))}
	if eq := result.Equivalence; eq != nil {
		max := eq.Total()
		lines = append(lines,
			detailLine("Equivalent", eq.Equivalent, max, noColor, lipgloss.Color("42")),
			detailLine("Not equivalent", eq.NotEquivalent, max, noColor, lipgloss.Color("196")),
		)
	}
	if comp := result.Compilation; comp != nil {
		max := 0
		for _, source := range aggregate.Sources() {
			if c := comp.For(source); c.HasCode > max {
				max = c.HasCode
			}
		}
		for _, source := range aggregate.Sources() {
			c := comp.For(source)
			lines = append(lines,
				detailLine(source.Label()+" code", c.HasCode, max, noColor, lipgloss.Color("203")),
				detailLine(source.Label()+" compiles", c.Compiles, max, noColor, lipgloss.Color("39")),
			)
		}
	}
	if result.Equivalence == nil && result.Compilation == nil {
		lines = append(lines, summary.NoDataNotice)
	}
	return strings.Join(lines, "\n")
}

// detailLine renders one labelled bar.
func detailLine(label string, value, max int, noColor bool, color lipgloss.Color) string {
	return padRight(label, 22) + padLeft(strconv.Itoa(value), 6) + " " + stylize(bar(value, max, barWidth), noColor, color)
}

// renderFooter renders skipped corpora and key hints.
func renderFooter(state State, noColor bool) string {
	parts := make([]string, 0, 2)
	if len(state.Skipped) > 0 {
		parts = append(parts, "Skipped: "+strings.Join(state.Skipped, ", "))
	}
	parts = append(parts, "↑/↓ select • q quit")
	return stylize(strings.Join(parts, "\n"), noColor, lipgloss.Color("244"))
}

// Render returns a static rendering of results for non-interactive output.
func Render(results runner.Results, noColor bool) string {
	state := NewState(results)
	blocks := []string{renderHeader(state, noColor)}
	for _, row := range state.Rows {
		blocks = append(blocks, "", renderDetail(row, noColor))
	}
	if len(state.Skipped) > 0 {
		blocks = append(blocks, "", "Skipped: "+strings.Join(state.Skipped, ", "))
	}
	return strings.Join(blocks, "\n") + "\n"
}

func padRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

func padLeft(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", width-len(text)) + text
}
