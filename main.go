package main

import (
	"fmt"
	"os"

	"lazytimer/cli"
	"lazytimer/tui"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: lazytimer <command> [args...]\n")
		fmt.Fprintf(os.Stderr, "Commands: tui, classic, run, seconds, normalize, format\n")
		os.Exit(1)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	logger, closeLog, err := cli.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	command := args[0]

	// Handle the UIs here to avoid importing tui in the cli package
	if command == "tui" || command == "classic" {
		initial := cli.DefaultTime()
		if len(args) > 1 {
			initial = args[1]
		}
		if command == "classic" {
			return tui.LaunchClassic(initial, logger)
		}
		return tui.LaunchTUI(initial, logger)
	}

	return cli.RunCLI(args, logger)
}
