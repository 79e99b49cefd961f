package cli

import (
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"annostat/internal/runner"
	"annostat/internal/ui/view"
)

// runProgram runs a Bubble Tea program; tests replace it.
var runProgram = func(model tea.Model, stdout io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen()).Run()
	return err
}

func runView(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		noTUI := flags.Bool("no-tui", false, "Print a static view instead of the interactive browser")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, interleave(flags, args), stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "view requires exactly one results path")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		results, err := runner.LoadResults(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load results: %v\n", err)
			return ExitError
		}
		plain := *noColor || !runner.ShouldUseStyling(stdout)

		if !useInteractive(*noTUI, stdout) {
			fmt.Fprint(stdout, view.Render(results, plain))
			return ExitOK
		}
		if err := runProgram(view.NewModel(results, view.Options{NoColor: plain}), stdout); err != nil {
			fmt.Fprintf(stderr, "View failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
