package view

import "annostat/internal/runner"

// Row holds display state for one corpus.
type Row struct {
	Name   string
	Result runner.CorpusResult
}

// State captures what the viewer shows for a run.
type State struct {
	RunID   string
	Rows    []Row
	Skipped []string
}

// NewState builds viewer state from run results, keeping corpus order.
func NewState(results runner.Results) State {
	rows := make([]Row, 0, len(results.Corpora))
	for _, corpus := range results.Corpora {
		rows = append(rows, Row{Name: corpus.Name(), Result: corpus})
	}
	return State{RunID: results.RunID, Rows: rows, Skipped: results.Skipped}
}

// Totals sums counts across every row.
type Totals struct {
	Corpora       int
	Records       int
	Equivalent    int
	NotEquivalent int
}

// Totals returns run-wide counts for the header.
func (s State) Totals() Totals {
	totals := Totals{Corpora: len(s.Rows)}
	for _, row := range s.Rows {
		totals.Records += row.Result.Records
		if eq := row.Result.Equivalence; eq != nil {
			totals.Equivalent += eq.Equivalent
			totals.NotEquivalent += eq.NotEquivalent
		}
	}
	return totals
}
