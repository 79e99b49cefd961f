package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/table"

	"annostat/internal/duckdb"
	"annostat/internal/summary"
)

func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("db", "", "DuckDB history file")
		corpus := flags.String("corpus", "", "Only show rows for this corpus path")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *dbPath == "" {
			fmt.Fprintln(stderr, "history requires --db")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		ctx := context.Background()
		db, err := duckdb.Open(ctx, *dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		corpusPath := *corpus
		if corpusPath != "" {
			corpusPath = absOr(corpusPath)
		}
		rows, err := duckdb.History(ctx, db, corpusPath)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(rows) == 0 {
			fmt.Fprintln(stdout, "No runs recorded.")
			return ExitOK
		}

		t := table.New().Headers("Run", "Started", "Corpus", "Kind", "Records", "Equivalent", "ChatGPT", "SO")
		for _, row := range rows {
			equivalent, chatgpt, so := "-", "-", "-"
			if eq := row.Equivalence; eq != nil && eq.Total() > 0 {
				equivalent = strconv.Itoa(eq.Equivalent) + " (" + summary.FormatPercent(eq.Equivalent, eq.Total()) + "%)"
			} else if eq != nil {
				equivalent = "0"
			}
			if comp := row.Compilation; comp != nil {
				chatgpt = strconv.Itoa(comp.ChatGPT.Compiles) + "/" + strconv.Itoa(comp.ChatGPT.HasCode)
				so = strconv.Itoa(comp.StackOverflow.Compiles) + "/" + strconv.Itoa(comp.StackOverflow.HasCode)
			}
			t.Row(row.RunID, row.StartedAt.UTC().Format(time.RFC3339), row.Path, row.Kind,
				strconv.Itoa(row.Records), equivalent, chatgpt, so)
		}
		fmt.Fprintln(stdout, t.Render())
		return ExitOK
	}
}
