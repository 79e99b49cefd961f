package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"annostat/internal/testutil"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	dir := t.TempDir()
	specPath := testutil.WriteFile(t, dir, filepath.Join(".annostat", "config.yml"), `version: 1
equivalence:
  files: [data/short.json]
output:
  charts: [svg]
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", specPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies every issue is reported.
func TestValidateCommandFailure(t *testing.T) {
	dir := t.TempDir()
	specPath := testutil.WriteFile(t, dir, filepath.Join(".annostat", "config.yml"), `version: 2
equivalence:
  files: [data/short.json]
output:
  charts: [gif]
workers: -1
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", specPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{"Validation failed", "version", "workers", "output.charts[0]"} {
		if !strings.Contains(err.String(), want) {
			t.Fatalf("expected %q in stderr, got %q", want, err.String())
		}
	}
}

// TestValidateUnknownField verifies typos in the config are rejected.
func TestValidateUnknownField(t *testing.T) {
	dir := t.TempDir()
	specPath := testutil.WriteFile(t, dir, "config.yml", "version: 1\nequivalance: {}\n")

	var out, err bytes.Buffer
	if code := Run([]string{"validate", "--spec", specPath}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
}
