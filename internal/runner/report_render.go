package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"annostat/internal/chart"
	"annostat/internal/summary"
)

const reportTitle = "Annotation analysis"

// ReportEntries converts run results into HTML report sections.
func ReportEntries(results Results) []chart.PageEntry {
	entries := make([]chart.PageEntry, 0, len(results.Corpora))
	for _, corpus := range results.Corpora {
		entry := chart.PageEntry{
			Title:   corpus.Name(),
			Summary: summary.Format(corpus.Report()),
		}
		if corpus.Equivalence != nil {
			entry.Charts = append(entry.Charts, chart.Equivalence(*corpus.Equivalence, NewOutputPaths(corpus.Path).EquivalenceTitle()))
		}
		if corpus.Compilation != nil {
			entry.Charts = append(entry.Charts, chart.Compilation(*corpus.Compilation))
		}
		entries = append(entries, entry)
	}
	return entries
}

// ReportPage is the HTML page for a run, titled with its run id.
func ReportPage(title string, results Results) templ.Component {
	if title == "" {
		title = reportTitle
	}
	return chart.ReportPage(title+" "+results.RunID, ReportEntries(results))
}

// WriteHTMLReport renders every corpus of the run into one HTML page.
func WriteHTMLReport(ctx context.Context, path string, results Results) error {
	var html strings.Builder
	if err := ReportPage(reportTitle, results).Render(ctx, &html); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
