package discover

import (
	"os"
	"path/filepath"
	"testing"

	"annostat/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// TestResolveDefaultLayout verifies fixed files, directory scans and skips.
func TestResolveDefaultLayout(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "q_shorter_than", "short_q_openai_answer.json"))
	touch(t, filepath.Join(root, "q_for_tfidf_term", "b_openai.json"))
	touch(t, filepath.Join(root, "q_for_tfidf_term", "a_openai.json"))
	touch(t, filepath.Join(root, "q_for_tfidf_term", "a_llama.json"))
	touch(t, filepath.Join(root, "q_for_tfidf_term", "openai_notes.txt"))
	touch(t, filepath.Join(root, "qa_with_codes", "qa_with_codes_openai_answer.json"))

	plan, err := Resolve(config.Default(), root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []Job{
		{Path: filepath.Join(root, "q_shorter_than", "short_q_openai_answer.json"), Kinds: KindEquivalence},
		{Path: filepath.Join(root, "q_for_tfidf_term", "a_openai.json"), Kinds: KindEquivalence},
		{Path: filepath.Join(root, "q_for_tfidf_term", "b_openai.json"), Kinds: KindEquivalence},
		{Path: filepath.Join(root, "qa_with_codes", "qa_with_codes_openai_answer.json"), Kinds: KindCompilation},
	}
	if len(plan.Jobs) != len(want) {
		t.Fatalf("unexpected jobs: %+v", plan.Jobs)
	}
	for i := range want {
		if plan.Jobs[i] != want[i] {
			t.Fatalf("job %d: got %+v want %+v", i, plan.Jobs[i], want[i])
		}
	}
	if len(plan.Skipped) != 1 || plan.Skipped[0] != filepath.Join(root, "q_longer_than", "long_q_openai_answer.json") {
		t.Fatalf("unexpected skipped: %v", plan.Skipped)
	}
}

// TestResolveMergesKinds verifies a corpus listed twice becomes one job.
func TestResolveMergesKinds(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "both.json"))
	cfg := config.Config{
		Equivalence: config.CorpusSet{Files: []string{"both.json"}},
		Compilation: config.CorpusSet{Files: []string{filepath.Join(root, "both.json")}},
	}
	plan, err := Resolve(cfg, root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(plan.Jobs) != 1 {
		t.Fatalf("expected one job, got %+v", plan.Jobs)
	}
	if !plan.Jobs[0].Kinds.Has(KindEquivalence|KindCompilation) || plan.Jobs[0].Kinds.String() != "equivalence+compilation" {
		t.Fatalf("unexpected kinds: %s", plan.Jobs[0].Kinds)
	}
}

// TestScanDirectoryMissing verifies a missing directory is not an error.
func TestScanDirectoryMissing(t *testing.T) {
	paths, err := ScanDirectory(filepath.Join(t.TempDir(), "nope"), ".json", "openai")
	if err != nil || len(paths) != 0 {
		t.Fatalf("unexpected result: %v %v", paths, err)
	}
}

// TestResolveSkipsDirectoriesListedAsFiles verifies only regular files become jobs.
func TestResolveSkipsDirectoriesListedAsFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "corpus.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	plan, err := Resolve(config.Config{Equivalence: config.CorpusSet{Files: []string{"corpus.json"}}}, root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(plan.Jobs) != 0 || len(plan.Skipped) != 1 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}
