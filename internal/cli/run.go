package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"annostat/internal/config"
	"annostat/internal/discover"
	"annostat/internal/duckdb"
	"annostat/internal/runner"
)

var (
	runCorpora   = runner.Run
	storeHistory = defaultStoreHistory
)

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .annostat/config.yml)")
		workers := flags.Int("workers", 0, "Corpora processed at once (default: config workers)")
		charts := flags.String("charts", "", "Chart formats, comma separated (png,svg)")
		verbose := flags.Bool("verbose", false, "Log each corpus as it is processed")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *workers < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --workers must be >= 0")
			return ExitUsage
		}

		resolved, err := resolveConfig(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		cfg := resolved.Config
		if *workers > 0 {
			cfg.Workers = *workers
		}
		if list := splitList(*charts); len(list) > 0 {
			cfg.Output.Charts = list
			config.Normalize(&cfg)
			if err := config.Validate(&cfg); err != nil {
				fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
				return ExitUsage
			}
		}

		plan, err := discover.Resolve(cfg, resolved.Root)
		if err != nil {
			fmt.Fprintf(stderr, "Discovery failed: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		results, err := runCorpora(ctx, plan, runner.RunParams{
			Workers:       cfg.Workers,
			Charts:        cfg.Output.Charts,
			Verbose:       *verbose,
			VerboseWriter: stderr,
			NoColor:       *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		for _, corpus := range results.Corpora {
			fmt.Fprintf(stdout, "%s (%s, %d records)\n", corpus.Path, corpus.Kind, corpus.Records)
			for _, out := range corpus.Outputs {
				fmt.Fprintf(stdout, "  %s\n", out)
			}
		}
		for _, skipped := range results.Skipped {
			fmt.Fprintf(stdout, "Skipped %s: not found\n", skipped)
		}

		if path := underRoot(resolved.Root, cfg.Output.Results); path != "" {
			if err := runner.WriteResults(path, results); err != nil {
				fmt.Fprintf(stderr, "Write results failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Results: %s\n", path)
		}
		if path := underRoot(resolved.Root, cfg.Output.HTMLReport); path != "" {
			if err := runner.WriteHTMLReport(ctx, path, results); err != nil {
				fmt.Fprintf(stderr, "Write report failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Report: %s\n", path)
		}
		if path := underRoot(resolved.Root, cfg.Output.HistoryDB); path != "" {
			if err := storeHistory(ctx, path, results); err != nil {
				fmt.Fprintf(stderr, "Store history failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "History: %s\n", path)
		}
		return ExitOK
	}
}

// defaultStoreHistory appends results to the DuckDB history file.
func defaultStoreHistory(ctx context.Context, path string, results runner.Results) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = duckdb.InsertRun(ctx, db, results)
	return err
}
