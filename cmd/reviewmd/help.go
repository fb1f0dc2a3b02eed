package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reviewmd [command] [flags] <path>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite plaintext code review reports into Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format     Rewrite reports in place (default)")
	fmt.Fprintln(w, "  check      List reports that would change")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'reviewmd help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format and check commands.
func printFormatUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: reviewmd %s <path>... [flags]\n", name)
	fmt.Fprintln(w)
	if name == cmdCheck {
		fmt.Fprintln(w, "Report files whose rewrite differs from their content. Nothing is written.")
		fmt.Fprintln(w, "Exits 1 when at least one file would change.")
	} else {
		fmt.Fprintln(w, "Rewrite review reports in place. Files whose first line is already a")
		fmt.Fprintln(w, "'## File Path:' heading are skipped unless --force is given.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Report file or directory (directories are searched with --include)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --include <glob>      Files to rewrite inside directories (default: by extension)")
	fmt.Fprintln(w, "      --exclude <glob>      Files or directories to leave out")
	fmt.Fprintln(w, "      --force               Rewrite files that already look transformed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --dry-run             Rewrite in memory without writing files")
	fmt.Fprintln(w, "      --html                Write <name>.html previews")
	fmt.Fprintln(w, "      --code-style <name>   Chroma style for preview code blocks (default github)")
	fmt.Fprintln(w, "      --style <name>        Preview stylesheet: review, plain, none (default review)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (default 1, 0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and finding counts")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  REVIEWMD_CONFIG, REVIEWMD_WORKERS, REVIEWMD_CODE_STYLE, REVIEWMD_STYLE,")
	fmt.Fprintln(w, "  REVIEWMD_NO_COLOR")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdFormat, cmdCheck:
		printFormatUsage(env.Stdout, args[0])
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: reviewmd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: reviewmd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
