package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"annostat/internal/config"
)

// resolveConfig loads the config named by --spec, or searches upward from
// the working directory and falls back to defaults.
func resolveConfig(specPath string) (config.Resolved, error) {
	specPath = strings.TrimSpace(specPath)
	if specPath != "" {
		abs, err := filepath.Abs(specPath)
		if err != nil {
			return config.Resolved{}, fmt.Errorf("resolve spec path: %w", err)
		}
		specPath = abs
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Resolved{}, fmt.Errorf("working directory: %w", err)
	}
	return config.Resolve(specPath, wd)
}

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// underRoot resolves a configured output path against the config root.
func underRoot(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// absOr returns the absolute form of path, or path itself when that fails.
func absOr(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
