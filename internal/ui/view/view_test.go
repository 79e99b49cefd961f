package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"annostat/internal/aggregate"
	"annostat/internal/runner"
)

func sampleResults() runner.Results {
	return runner.Results{
		RunID: "run-1",
		Corpora: []runner.CorpusResult{
			{
				Path:        "/data/short.json",
				Kind:        "equivalence",
				Records:     3,
				Equivalence: &aggregate.EquivalenceCounts{Equivalent: 2, NotEquivalent: 1},
			},
			{
				Path:    "/data/code.json",
				Kind:    "compilation",
				Records: 4,
				Compilation: &aggregate.CompilationCounts{
					ChatGPT:       aggregate.SourceCounts{HasCode: 3, Compiles: 2},
					StackOverflow: aggregate.SourceCounts{HasCode: 1, Compiles: 0},
				},
			},
		},
		Skipped: []string{"/data/missing.json"},
	}
}

// TestRowsForState verifies table cells for each result kind.
func TestRowsForState(t *testing.T) {
	rows := rowsForState(NewState(sampleResults()))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "short.json" || rows[0][3] != "2 (66.67%)" || rows[0][4] != "1 (33.33%)" {
		t.Fatalf("unexpected equivalence row: %v", rows[0])
	}
	if rows[0][5] != notApplicable || rows[0][6] != notApplicable {
		t.Fatalf("expected no compilation cells, got %v", rows[0])
	}
	if rows[1][3] != notApplicable || rows[1][5] != "2/3" || rows[1][6] != "0/1" {
		t.Fatalf("unexpected compilation row: %v", rows[1])
	}
}

// TestTotals verifies run-wide counts.
func TestTotals(t *testing.T) {
	totals := NewState(sampleResults()).Totals()
	if totals.Corpora != 2 || totals.Records != 7 || totals.Equivalent != 2 || totals.NotEquivalent != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

// TestUpdateMovesSelection verifies arrow keys move the highlighted corpus.
func TestUpdateMovesSelection(t *testing.T) {
	model := NewModel(sampleResults(), Options{NoColor: true})
	if model.Selected() != 0 {
		t.Fatalf("expected first row selected, got %d", model.Selected())
	}
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = next.(Model)
	if model.Selected() != 1 {
		t.Fatalf("expected second row selected, got %d", model.Selected())
	}
	if !strings.Contains(model.View(), "/data/code.json") {
		t.Fatalf("expected detail for selected corpus, got:\n%s", model.View())
	}
}

// TestUpdateQuits verifies quit keys stop the program.
func TestUpdateQuits(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := NewModel(sampleResults(), Options{NoColor: true}).Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %q", key.String())
		}
	}
}

// TestRenderPlain verifies static output without styling.
func TestRenderPlain(t *testing.T) {
	out := Render(sampleResults(), true)
	for _, want := range []string{
		"Run run-1 | Corpora: 2 | Records: 7 | Equivalent: 2 (66.67%)",
		"/data/short.json",
		"ChatGPT compiles",
		"StackOverflow code",
		"Skipped: /data/missing.json",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes in plain output")
	}
}

// TestRenderEmptyCorpus verifies corpora without counts show the notice.
func TestRenderEmptyCorpus(t *testing.T) {
	out := Render(runner.Results{RunID: "r", Corpora: []runner.CorpusResult{{Path: "/x.json", Kind: "equivalence"}}}, true)
	if !strings.Contains(out, "No data available to calculate percentages.") {
		t.Fatalf("expected notice, got:\n%s", out)
	}
}

// TestBar verifies bar scaling.
func TestBar(t *testing.T) {
	cases := []struct {
		value, max, want int
	}{
		{0, 10, 0},
		{10, 10, 30},
		{5, 10, 15},
		{1, 1000, 1},
	}
	for _, tc := range cases {
		if got := len([]rune(bar(tc.value, tc.max, barWidth))); got != tc.want {
			t.Fatalf("bar(%d,%d): expected %d cells, got %d", tc.value, tc.max, tc.want, got)
		}
	}
}
