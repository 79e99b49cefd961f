package report

import (
	"fmt"
	"io"
	"path/filepath"

	"annostat/internal/aggregate"
)

// formatRate renders a percentage, or "-" when missing.
func formatRate(rate Rate) string {
	if !rate.Valid {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", rate.Value)
}

// formatDelta renders a signed change in percentage points.
func formatDelta(rate Rate) string {
	if !rate.Valid {
		return "-"
	}
	return fmt.Sprintf("%+.2f", rate.Value)
}

// Write prints a comparison as plain text.
func Write(w io.Writer, c Comparison) error {
	if _, err := fmt.Fprintf(w, "Base %s\nHead %s\n", c.BaseRunID, c.HeadRunID); err != nil {
		return err
	}
	for _, row := range c.Rows {
		status := ""
		switch {
		case !row.InBase:
			status = " (new)"
		case !row.InHead:
			status = " (removed)"
		}
		if _, err := fmt.Fprintf(w, "\n%s%s\n", filepath.Base(row.Path), status); err != nil {
			return err
		}
		if row.Base.Equivalent.Valid || row.Head.Equivalent.Valid {
			if err := writeLine(w, "Equivalent", row.Base.Equivalent, row.Head.Equivalent); err != nil {
				return err
			}
		}
		for _, source := range aggregate.Sources() {
			base, head := row.Base.Compiles[source], row.Head.Compiles[source]
			if !base.Valid && !head.Valid {
				continue
			}
			if err := writeLine(w, source.Label()+" compiles", base, head); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(w io.Writer, label string, base, head Rate) error {
	_, err := fmt.Fprintf(w, "  %-22s %9s -> %9s  delta %s\n", label, formatRate(base), formatRate(head), formatDelta(base.Delta(head)))
	return err
}
