package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

# Corpora whose "Are the two answers equivalent?" judgments are counted.
equivalence:
  files:
    - q_shorter_than/short_q_openai_answer.json
    - q_longer_than/long_q_openai_answer.json
  directories:
    - path: q_for_tfidf_term
      suffix: .json
      contains: openai

# Corpora whose "Code and Compile Information" judgments are counted.
compilation:
  files:
    - qa_with_codes/qa_with_codes_openai_answer.json

output:
  charts: [png]
  html_report: ""
  history_db: ""
  results: ""

workers: 4
`

// Scaffold writes the default config to path. Existing files are left alone.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
