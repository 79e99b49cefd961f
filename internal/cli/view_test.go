package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"annostat/internal/aggregate"
	"annostat/internal/runner"
)

func writeResults(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.json")
	err := runner.WriteResults(path, runner.Results{
		RunID: "run-view",
		Corpora: []runner.CorpusResult{{
			Path:        "/data/short.json",
			Kind:        "equivalence",
			Records:     4,
			Equivalence: &aggregate.EquivalenceCounts{Equivalent: 3, NotEquivalent: 1},
		}},
	})
	if err != nil {
		t.Fatalf("write results: %v", err)
	}
	return path
}

// TestViewPlain verifies non-terminal output falls back to the static view.
func TestViewPlain(t *testing.T) {
	path := writeResults(t)

	var out, errOut bytes.Buffer
	if code := Run([]string{"view", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Run run-view | Corpora: 1 | Records: 4 | Equivalent: 3 (75.00%)") {
		t.Fatalf("unexpected view output:\n%s", out.String())
	}
}

// TestViewInteractive verifies terminals start the Bubble Tea program.
func TestViewInteractive(t *testing.T) {
	path := writeResults(t)
	originalTerm, originalProgram := isTerminal, runProgram
	isTerminal = func(io.Writer) bool { return true }
	var started tea.Model
	runProgram = func(model tea.Model, _ io.Writer) error {
		started = model
		return nil
	}
	t.Cleanup(func() { isTerminal, runProgram = originalTerm, originalProgram })

	var out, errOut bytes.Buffer
	if code := Run([]string{"view", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if started == nil {
		t.Fatalf("expected interactive program to start")
	}

	started = nil
	if code := Run([]string{"view", "--no-tui", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if started != nil {
		t.Fatalf("expected --no-tui to skip the interactive program")
	}
}

// TestViewMissingFile verifies load errors exit 1.
func TestViewMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"view", filepath.Join(t.TempDir(), "nope.json")}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
}
