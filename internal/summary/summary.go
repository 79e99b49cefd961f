// Package summary formats aggregate counts into the plain-text report written
// next to each corpus.
package summary

import (
	"fmt"
	"os"
	"strings"

	"annostat/internal/aggregate"
)

// NoDataNotice replaces the percentage lines when there is nothing to divide by.
const NoDataNotice = "No data available to calculate percentages."

// Report selects which sections to emit. Nil sections are omitted entirely.
type Report struct {
	Equivalence *aggregate.EquivalenceCounts
	Compilation *aggregate.CompilationCounts
}

// Format renders the report text. Each present section ends with a blank line.
func Format(report Report) string {
	var b strings.Builder
	if report.Equivalence != nil {
		writeEquivalence(&b, *report.Equivalence)
	}
	if report.Compilation != nil {
		writeCompilation(&b, *report.Compilation)
	}
	return b.String()
}

// Write formats report and stores it at path.
func Write(path string, report Report) error {
	if err := os.WriteFile(path, []byte(Format(report)), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Percent returns count as a percentage of total. total must be positive.
func Percent(count, total int) float64 {
	return float64(count) / float64(total) * 100
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(count, total int) string {
	return fmt.Sprintf("%.2f", Percent(count, total))
}

func writeEquivalence(b *strings.Builder, counts aggregate.EquivalenceCounts) {
	total := counts.Total()
	b.WriteString("Comparison analysis summary:\n")
	fmt.Fprintf(b, "Total questions: %d\n", total)
	if total > 0 {
		fmt.Fprintf(b, "Equivalent answers: %d (%s%%)\n", counts.Equivalent, FormatPercent(counts.Equivalent, total))
		fmt.Fprintf(b, "Not equivalent answers: %d (%s%%)\n", counts.NotEquivalent, FormatPercent(counts.NotEquivalent, total))
	} else {
		b.WriteString(NoDataNotice + "\n")
	}
	b.WriteString("\n")
}

func writeCompilation(b *strings.Builder, counts aggregate.CompilationCounts) {
	b.WriteString("Code compilation and existence analysis summary:\n")
	for _, source := range aggregate.Sources() {
		c := counts.For(source)
		fmt.Fprintf(b, "%s: code exists in %d instances, of which %d compile successfully.\n", source.Label(), c.HasCode, c.Compiles)
	}
	b.WriteString("\n")
}
