package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolved is a loaded config plus the directory relative paths resolve against.
type Resolved struct {
	Config Config
	Path   string
	Root   string
}

// Resolve loads the config at path, or searches upward from startDir when
// path is empty. Without any config file the defaults apply, rooted at startDir.
func Resolve(path, startDir string) (Resolved, error) {
	if path == "" {
		found, err := FindConfigPath(startDir)
		if err != nil {
			if !IsNotFound(err) {
				return Resolved{}, err
			}
			root, rootErr := absDir(startDir)
			if rootErr != nil {
				return Resolved{}, rootErr
			}
			cfg := Default()
			Normalize(&cfg)
			return Resolved{Config: cfg, Root: root}, nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Config: cfg, Path: path, Root: RootFromConfigPath(path)}, nil
}
