package cli

import (
	"flag"
	"fmt"
	"io"

	"annostat/internal/report"
	"annostat/internal/runner"
)

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if fs.NArg() != 2 {
			fmt.Fprintln(stderr, "compare requires <base.json> and <head.json>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		base, err := runner.LoadResults(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Base run not found: %v\n", err)
			return ExitError
		}
		head, err := runner.LoadResults(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(stderr, "Head run not found: %v\n", err)
			return ExitError
		}
		if err := report.Write(stdout, report.Compare(base, head)); err != nil {
			fmt.Fprintf(stderr, "Compare failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
