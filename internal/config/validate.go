package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Workers < 0 {
		add("workers", "must be >= 0")
	}

	validateSet := func(name string, set CorpusSet) {
		for i, file := range set.Files {
			if file == "" {
				add(fmt.Sprintf("%s.files[%d]", name, i), "is required")
			}
		}
		for i, dir := range set.Directories {
			if dir.Path == "" {
				add(fmt.Sprintf("%s.directories[%d].path", name, i), "is required")
			}
		}
	}
	validateSet("equivalence", cfg.Equivalence)
	validateSet("compilation", cfg.Compilation)

	if len(cfg.Equivalence.Files)+len(cfg.Equivalence.Directories)+len(cfg.Compilation.Files)+len(cfg.Compilation.Directories) == 0 {
		add("equivalence", "no corpora configured")
	}

	for i, format := range cfg.Output.Charts {
		switch format {
		case ChartPNG, ChartSVG:
		case "":
			add(fmt.Sprintf("output.charts[%d]", i), "is required")
		default:
			add(fmt.Sprintf("output.charts[%d]", i), fmt.Sprintf("unsupported format %q", format))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
