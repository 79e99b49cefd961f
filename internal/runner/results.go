package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"annostat/internal/aggregate"
	"annostat/internal/summary"
)

// Results describes one run over every planned corpus.
type Results struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Corpora    []CorpusResult `json:"corpora"`
	Skipped    []string       `json:"skipped,omitempty"`
}

// CorpusResult holds the counts and artifacts of one corpus.
type CorpusResult struct {
	Path        string                       `json:"path"`
	Kind        string                       `json:"kind"`
	Records     int                          `json:"records"`
	Equivalence *aggregate.EquivalenceCounts `json:"equivalence,omitempty"`
	Compilation *aggregate.CompilationCounts `json:"compilation,omitempty"`
	Outputs     []string                     `json:"outputs"`
}

// Report returns the summary sections for the corpus.
func (c CorpusResult) Report() summary.Report {
	return summary.Report{Equivalence: c.Equivalence, Compilation: c.Compilation}
}

// Name is the corpus file name.
func (c CorpusResult) Name() string {
	return filepath.Base(c.Path)
}

// WriteResults stores results as pretty JSON.
func WriteResults(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadResults reads a results file written by WriteResults.
func LoadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, err
	}
	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("parse results: %w", err)
	}
	return results, nil
}
