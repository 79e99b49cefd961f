// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// DefaultTimeout is the standard timeout for unit tests.
const DefaultTimeout = 5 * time.Second

// TB is a test handle that exposes its deadline; *testing.T satisfies it.
type TB interface {
	testing.TB
	Deadline() (time.Time, bool)
}

// Context returns a context that is cancelled when the test ends or the
// timeout passes, whichever comes first.
func Context(t TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// WriteFile writes contents under dir, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// EquivalenceCorpus is a three-record corpus: one equivalent, one not, one unlabeled.
const EquivalenceCorpus = `[
  {"Are the two answers equivalent?": "Yes"},
  {"Are the two answers equivalent?": "No"},
  {}
]`

// CompilationCorpus exercises both compile spellings and a compile flag without code.
const CompilationCorpus = `[
  {"Code and Compile Information": {
    "Answer ChatGpt": {"code": "Yes", "compile": "Yes."},
    "Answer StackOverflow": {"code": "No"}
  }},
  {"Code and Compile Information": {
    "Answer ChatGpt": {"code": "No", "compile": "Yes"},
    "Answer StackOverflow": {"code": "Yes", "compile": "Yes"}
  }},
  {"Code and Compile Information": {
    "Answer ChatGpt": {"code": "Yes", "compile": "No"}
  }}
]`
