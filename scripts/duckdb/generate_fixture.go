// Command generate_fixture writes a synthetic run history DuckDB file for
// exercising the history and serve commands.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"annostat/internal/aggregate"
	"annostat/internal/duckdb"
	"annostat/internal/runner"
)

// fixtureConfig defines the JSON config for generating a DuckDB fixture.
type fixtureConfig struct {
	Name    string `json:"name"`
	Runs    int    `json:"runs"`
	Corpora int    `json:"corpora"`
	Records int    `json:"records"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Runs <= 0 || cfg.Corpora <= 0 || cfg.Records <= 0 {
		return fixtureConfig{}, fmt.Errorf("runs, corpora, and records must be positive")
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for run := 0; run < cfg.Runs; run++ {
		startedAt := start.Add(time.Duration(run) * time.Hour)
		results := runner.Results{
			RunID:      deterministicID("run", run),
			StartedAt:  startedAt,
			FinishedAt: startedAt.Add(time.Minute),
		}
		for corpus := 0; corpus < cfg.Corpora; corpus++ {
			results.Corpora = append(results.Corpora, fixtureCorpus(cfg, run, corpus))
		}
		if _, err := duckdb.InsertRun(ctx, db, results); err != nil {
			return err
		}
	}
	return nil
}

// fixtureCorpus alternates equivalence and compilation corpora with counts
// that drift between runs.
func fixtureCorpus(cfg fixtureConfig, run, corpus int) runner.CorpusResult {
	path := fmt.Sprintf("/fixtures/%s/corpus_%03d_openai_answer.json", cfg.Name, corpus)
	shift := (run + corpus) % (cfg.Records + 1)
	if corpus%2 == 0 {
		return runner.CorpusResult{
			Path:        path,
			Kind:        "equivalence",
			Records:     cfg.Records,
			Equivalence: &aggregate.EquivalenceCounts{Equivalent: shift, NotEquivalent: cfg.Records - shift},
		}
	}
	return runner.CorpusResult{
		Path:    path,
		Kind:    "compilation",
		Records: cfg.Records,
		Compilation: &aggregate.CompilationCounts{
			ChatGPT:       aggregate.SourceCounts{HasCode: cfg.Records, Compiles: shift},
			StackOverflow: aggregate.SourceCounts{HasCode: cfg.Records - shift, Compiles: (cfg.Records - shift) / 2},
		},
	}
}

// removeIfExists deletes an existing fixture file so we always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable UUID for fixture rows.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace ensures stable UUIDs across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
