package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"annostat/internal/aggregate"
	"annostat/internal/summary"
)

const notApplicable = "-"

// formatName truncates long corpus names for the table.
func formatName(name string) string {
	const limit = 40
	if len(name) <= limit {
		return name
	}
	return name[:limit-3] + "..."
}

// formatEquivalent renders a count with its share of the total.
func formatEquivalent(count, total int) string {
	if total == 0 {
		return strconv.Itoa(count)
	}
	return strconv.Itoa(count) + " (" + summary.FormatPercent(count, total) + "%)"
}

// formatSource renders "compiles/has code" for one answer source.
func formatSource(counts *aggregate.CompilationCounts, source aggregate.Source) string {
	if counts == nil {
		return notApplicable
	}
	c := counts.For(source)
	return strconv.Itoa(c.Compiles) + "/" + strconv.Itoa(c.HasCode)
}

// bar draws a horizontal bar scaled against max.
func bar(value, max, width int) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
