package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"annostat/internal/testutil"
)

// TestSummarizeEquivalence verifies the equivalence section on stdout.
func TestSummarizeEquivalence(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "short.json", testutil.EquivalenceCorpus)

	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize", path, "--kind", "equivalence"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	want := "Comparison analysis summary:\n" +
		"Total questions: 3\n" +
		"Equivalent answers: 1 (33.33%)\n" +
		"Not equivalent answers: 2 (66.67%)\n\n"
	if out.String() != want {
		t.Fatalf("unexpected summary:\n%q\nwant:\n%q", out.String(), want)
	}
}

// TestSummarizeBothToFile verifies --output writes both sections.
func TestSummarizeBothToFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "code.json", testutil.CompilationCorpus)
	target := filepath.Join(dir, "summary.txt")

	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize", "--output", target, path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	text := testutil.ReadFile(t, target)
	for _, want := range []string{
		"Comparison analysis summary:",
		"ChatGPT: code exists in 2 instances, of which 1 compile successfully.",
		"StackOverflow: code exists in 1 instances, of which 1 compile successfully.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}
}

// TestSummarizeBadInput verifies shape errors exit 1 with context.
func TestSummarizeBadInput(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.json", `{"not": "a list"}`)

	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize", path}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Summarize failed") {
		t.Fatalf("expected failure message, got %q", errOut.String())
	}
}

// TestSummarizeRequiresPath verifies a missing corpus argument is a usage error.
func TestSummarizeRequiresPath(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
