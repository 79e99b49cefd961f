package config

import "strings"

// Normalize trims values, fills defaults, and removes duplicate entries.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	normalizeSet(&cfg.Equivalence)
	normalizeSet(&cfg.Compilation)

	charts := make([]string, 0, len(cfg.Output.Charts))
	for _, format := range cfg.Output.Charts {
		charts = append(charts, strings.ToLower(strings.TrimSpace(format)))
	}
	cfg.Output.Charts = dedupe(charts)
	if len(cfg.Output.Charts) == 0 {
		cfg.Output.Charts = []string{ChartPNG}
	}
	cfg.Output.HTMLReport = strings.TrimSpace(cfg.Output.HTMLReport)
	cfg.Output.HistoryDB = strings.TrimSpace(cfg.Output.HistoryDB)
	cfg.Output.Results = strings.TrimSpace(cfg.Output.Results)
}

func normalizeSet(set *CorpusSet) {
	files := make([]string, 0, len(set.Files))
	for _, file := range set.Files {
		files = append(files, strings.TrimSpace(file))
	}
	set.Files = dedupe(files)
	for i := range set.Directories {
		dir := &set.Directories[i]
		dir.Path = strings.TrimSpace(dir.Path)
		dir.Suffix = strings.TrimSpace(dir.Suffix)
		dir.Contains = strings.TrimSpace(dir.Contains)
		if dir.Suffix == "" {
			dir.Suffix = ".json"
		}
	}
}

// dedupe keeps the first occurrence of each value. Empty strings are kept so
// validation can report them.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
		}
		out = append(out, value)
	}
	return out
}
