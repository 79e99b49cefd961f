package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"annostat/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		dbPath := fs.String("db", "", "DuckDB history file to expose")
		if code, ok := parseFlags(cmd, fs, interleave(fs, args), stdout, stderr); !ok {
			return code
		}

		resultsPath := fs.Arg(0)
		if resultsPath == "" {
			fmt.Fprintln(stderr, "Missing <results.json>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		for _, path := range []string{resultsPath, *dbPath} {
			if path == "" {
				continue
			}
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintf(stderr, "File not found: %v\n", err)
				return ExitError
			}
		}

		cfg := reportserver.Config{
			Addr:        *addr,
			ResultsPath: resultsPath,
			DBPath:      *dbPath,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Fprintf(stdout, "Serving report at http://%s\n", cfg.Addr)
		if err := serveReport(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
