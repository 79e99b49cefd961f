package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  annostat <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"annostat <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .annostat/config.yml", []string{
		"annostat init [--spec <path>]",
	}, runInit),
	command("validate", "Validate .annostat/config.yml", []string{
		"annostat validate [--spec <path>]",
	}, runValidate),
	command("run", "Aggregate every configured corpus", []string{
		"annostat run [--spec <path>] [--workers <n>] [--charts png,svg] [--verbose] [--no-color]",
	}, runRun),
	command("summarize", "Summarize a single corpus", []string{
		"annostat summarize <corpus.json> [--kind equivalence|compilation|both] [--output <path>]",
	}, runSummarize),
	command("view", "Browse a results file", []string{
		"annostat view <results.json> [--no-tui] [--no-color]",
	}, runView),
	command("history", "List stored runs for a corpus", []string{
		"annostat history --db <path> [--corpus <path>]",
	}, runHistory),
	command("compare", "Compare the rates of two results files", []string{
		"annostat compare <base.json> <head.json>",
	}, runCompare),
	command("serve", "Serve the HTML report for a results file", []string{
		"annostat serve <results.json> [--addr <host:port>] [--db <path>]",
	}, runServe),
}
