package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// selectionFlags holds directory walk filters.
type selectionFlags struct {
	include []string
	exclude []string
}

// previewFlags holds HTML preview flags.
type previewFlags struct {
	html      bool
	codeStyle string
	style     string
}

// formatFlags holds all flags for the format and check commands.
type formatFlags struct {
	common    commonFlags
	selection selectionFlags
	preview   previewFlags
	workers   int
	force     bool
	dryRun    bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and finding counts")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// addSelectionFlags adds directory walk filters to a FlagSet.
func addSelectionFlags(fs *flag.FlagSet, f *selectionFlags) {
	fs.StringSliceVar(&f.include, "include", nil, "glob of files to rewrite inside directories (repeatable)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "glob of files or directories to leave out (repeatable)")
}

// addPreviewFlags adds HTML preview flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.html, "html", false, "write an HTML preview next to each report")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for preview code blocks")
	fs.StringVar(&f.style, "style", "", "preview page stylesheet name (\"none\" to disable)")
}

// parseFormatFlags parses format or check flags and returns positional args.
// Parse errors are returned unprinted; flag.ErrHelp is returned for -h.
func parseFormatFlags(name string, args []string) (*formatFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &formatFlags{changed: fs.Changed}

	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (0 = auto)")
	fs.BoolVar(&f.force, "force", false, "rewrite files that already look transformed")
	fs.BoolVar(&f.dryRun, "dry-run", false, "rewrite in memory without writing files")

	addCommonFlags(fs, &f.common)
	addSelectionFlags(fs, &f.selection)
	addPreviewFlags(fs, &f.preview)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
