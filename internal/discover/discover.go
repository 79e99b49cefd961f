// Package discover turns configured corpus lists into processing jobs.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"annostat/internal/config"
)

// Kind selects which aggregations run for a corpus.
type Kind uint8

const (
	KindEquivalence Kind = 1 << iota
	KindCompilation
)

// Has reports whether every bit of other is set.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

func (k Kind) String() string {
	var parts []string
	if k.Has(KindEquivalence) {
		parts = append(parts, "equivalence")
	}
	if k.Has(KindCompilation) {
		parts = append(parts, "compilation")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Job is one corpus file and the aggregations to run on it.
type Job struct {
	Path  string
	Kinds Kind
}

// Plan is the ordered job list for a run.
type Plan struct {
	Jobs []Job
	// Skipped lists configured files that do not exist.
	Skipped []string
}

// Resolve expands the config into jobs. Relative paths resolve against root.
// Missing files and directories are skipped, not errors.
func Resolve(cfg config.Config, root string) (Plan, error) {
	b := &planBuilder{index: map[string]int{}}
	if err := b.addSet(cfg.Equivalence, root, KindEquivalence); err != nil {
		return Plan{}, err
	}
	if err := b.addSet(cfg.Compilation, root, KindCompilation); err != nil {
		return Plan{}, err
	}
	return b.plan, nil
}

type planBuilder struct {
	plan  Plan
	index map[string]int
}

func (b *planBuilder) addSet(set config.CorpusSet, root string, kind Kind) error {
	for _, file := range set.Files {
		path := resolvePath(root, file)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("stat corpus %q: %w", path, err)
			}
			b.plan.Skipped = append(b.plan.Skipped, path)
			continue
		}
		b.add(path, kind)
	}
	for _, dir := range set.Directories {
		paths, err := ScanDirectory(resolvePath(root, dir.Path), dir.Suffix, dir.Contains)
		if err != nil {
			return err
		}
		for _, path := range paths {
			b.add(path, kind)
		}
	}
	return nil
}

func (b *planBuilder) add(path string, kind Kind) {
	if i, ok := b.index[path]; ok {
		b.plan.Jobs[i].Kinds |= kind
		return
	}
	b.index[path] = len(b.plan.Jobs)
	b.plan.Jobs = append(b.plan.Jobs, Job{Path: path, Kinds: kind})
}

// ScanDirectory lists regular files in dir whose names end with suffix and
// contain substr, in lexical order. A missing directory yields no files.
func ScanDirectory(dir, suffix, substr string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) || !strings.Contains(name, substr) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
