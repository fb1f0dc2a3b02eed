package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-reviewmd/internal/config"
	"github.com/alnah/go-reviewmd/internal/fileutil"
	"github.com/alnah/go-reviewmd/internal/hints"
	"github.com/alnah/go-reviewmd/internal/report"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput  = errors.New("no input specified")
	ErrNotFound = errors.New("no input path exists")
)

// target is one path resolved from the command line, in argument order.
// Pending targets still need to be read and rewritten; the others already
// carry their final status.
type target struct {
	path    string
	pending bool
	status  report.Status
	err     error
}

// discoverTargets expands path arguments into targets. Files are checked
// against the eligible extensions; directories are walked and filtered with
// the include and exclude globs. A path reached twice is kept once.
func discoverTargets(args []string, in config.InputConfig) []target {
	var targets []target
	seen := make(map[string]bool)

	add := func(t target) {
		key := filepath.Clean(t.path)
		if seen[key] {
			return
		}
		seen[key] = true
		targets = append(targets, t)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			for _, t := range walkDir(arg, in) {
				add(t)
			}
		case !fileutil.HasExtension(arg, in.Extensions):
			add(target{path: arg, status: report.StatusSkippedExtension})
		case errors.Is(err, fs.ErrNotExist):
			add(target{path: arg, status: report.StatusNotFound})
		case err != nil:
			add(target{path: arg, status: report.StatusReadError, err: fmt.Errorf("%w: %v%s", ErrReadMarkdown, err, hints.ForFileError(err))})
		default:
			add(target{path: arg, pending: true})
		}
	}

	return targets
}

// walkDir lists the files under root selected by the include globs, or by
// the eligible extensions when no include glob is set, and not matched by an
// exclude glob. Globs match slash-separated paths relative to
// root. Unreadable entries become read errors; the walk continues.
func walkDir(root string, in config.InputConfig) []target {
	var targets []target

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			targets = append(targets, target{path: path, status: report.StatusReadError, err: fmt.Errorf("%w: %v", ErrReadMarkdown, err)})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchAny(in.Exclude, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !included(in, rel) || matchAny(in.Exclude, rel) {
			return nil
		}
		targets = append(targets, target{path: path, pending: true})
		return nil
	})

	return targets
}

// included reports whether a walked file is selected for rewriting.
func included(in config.InputConfig, rel string) bool {
	if len(in.Include) == 0 {
		return fileutil.HasExtension(rel, in.Extensions)
	}
	return matchAny(in.Include, rel)
}

// matchAny reports whether rel matches one of the patterns.
// Patterns are validated with the config, so match errors cannot occur.
func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
