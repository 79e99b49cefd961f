package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"annostat/internal/aggregate"
	"annostat/internal/record"
	"annostat/internal/summary"
)

// summaryKinds maps --kind values to the sections they request.
var summaryKinds = map[string][2]bool{
	"equivalence": {true, false},
	"compilation": {false, true},
	"both":        {true, true},
}

func runSummarize(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		kind := flags.String("kind", "both", "Sections to compute: equivalence, compilation, or both")
		output := flags.String("output", "", "Write the summary to a file instead of stdout")
		if code, ok := parseFlags(cmd, flags, interleave(flags, args), stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "summarize requires exactly one corpus path")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		sections, ok := summaryKinds[strings.ToLower(strings.TrimSpace(*kind))]
		if !ok {
			fmt.Fprintf(stderr, "invalid arguments: unknown kind %q (expected equivalence|compilation|both)\n", *kind)
			return ExitUsage
		}

		records, err := record.LoadCorpus(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Summarize failed: %v\n", err)
			return ExitError
		}
		var report summary.Report
		if sections[0] {
			counts := aggregate.Equivalence(records)
			report.Equivalence = &counts
		}
		if sections[1] {
			counts := aggregate.Compilation(records)
			report.Compilation = &counts
		}

		if *output == "" {
			fmt.Fprint(stdout, summary.Format(report))
			return ExitOK
		}
		if err := summary.Write(*output, report); err != nil {
			fmt.Fprintf(stderr, "Summarize failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *output)
		return ExitOK
	}
}
