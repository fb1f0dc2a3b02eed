package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Command names.
const (
	cmdFormat  = "format"
	cmdCheck   = "check"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
)

// isCommand reports whether arg names a subcommand.
// Anything else is a path for the default format command.
func isCommand(arg string) bool {
	switch arg {
	case cmdFormat, cmdCheck, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// runMain dispatches args[1:] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		cmd, rest = cmdFormat, args[1:]
	}

	var err error
	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "reviewmd %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	default:
		err = runFormat(ctx, cmd, rest, env)
		if errors.Is(err, flag.ErrHelp) {
			printFormatUsage(env.Stdout, cmd)
			return ExitSuccess
		}
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "reviewmd: %v\n", err)
	}
	return exitCodeFor(err)
}
