package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	reviewmd "github.com/alnah/go-reviewmd"
	"github.com/alnah/go-reviewmd/internal/fileutil"
	"github.com/alnah/go-reviewmd/internal/hints"
	"github.com/alnah/go-reviewmd/internal/report"
)

// filePermissions applies to new preview files; rewritten reports keep their mode.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteMarkdown = errors.New("failed to write markdown file")
	ErrWriteHTML     = errors.New("failed to write HTML preview")
	ErrRenderHTML    = errors.New("failed to render HTML preview")
)

// CLIFormatter is the interface for the formatting service.
type CLIFormatter interface {
	Format(ctx context.Context, input reviewmd.Input) (*reviewmd.Result, error)
}

// Compile-time interface implementation check.
var _ CLIFormatter = (*reviewmd.Formatter)(nil)

// batchOptions groups settings shared by every file of a run.
type batchOptions struct {
	check  bool // compare only, never write
	force  bool // ignore the already-transformed check
	dryRun bool // rewrite without writing
	html   bool // write <name>.html previews
	now    func() time.Time

	// writeFile replaces a file's content; nil means fileutil.WriteFileAtomic.
	writeFile func(path string, data []byte, perm os.FileMode) error
}

// processBatch rewrites files concurrently with n workers and returns one
// entry per file, in the order of paths.
func processBatch(ctx context.Context, f CLIFormatter, paths []string, n int, opts batchOptions) []report.Entry {
	if len(paths) == 0 {
		return nil
	}

	concurrency := resolvePoolSize(n, len(paths))

	results := make([]report.Entry, len(paths))
	var wg sync.WaitGroup
	jobs := make(chan int, len(paths))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = report.Entry{
						Path:   paths[idx],
						Status: report.StatusCanceled,
						Err:    ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, f, paths[idx], opts)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile rewrites a single file and returns its entry.
func processFile(ctx context.Context, f CLIFormatter, path string, opts batchOptions) report.Entry {
	start := opts.now()
	entry := report.Entry{Path: path}
	write := opts.writeFile
	if write == nil {
		write = fileutil.WriteFileAtomic
	}
	done := func(status report.Status, err error) report.Entry {
		entry.Status = status
		entry.Err = err
		entry.Duration = opts.now().Sub(start)
		return entry
	}

	// The marker check reads only up to the first non-blank line.
	if !opts.force && reviewmd.IsTransformedFile(path) {
		return done(report.StatusSkippedTransformed, nil)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return done(report.StatusReadError, fmt.Errorf("%w: %v%s", ErrReadMarkdown, err, hints.ForFileError(err)))
	}

	res, err := f.Format(ctx, reviewmd.Input{
		Markdown: string(content),
		HTML:     opts.html && !opts.check,
	})
	if err != nil {
		if ctx.Err() != nil {
			return done(report.StatusCanceled, err)
		}
		return done(report.StatusRenderError, fmt.Errorf("%w: %v", ErrRenderHTML, err))
	}
	entry.Findings = res.Findings()

	if opts.check {
		if res.Changed {
			return done(report.StatusWouldChange, nil)
		}
		return done(report.StatusUnchanged, nil)
	}

	if opts.dryRun {
		return done(report.StatusProcessed, nil)
	}

	if res.Changed {
		if err := write(path, []byte(res.Markdown), filePermissions); err != nil {
			return done(report.StatusWriteError, fmt.Errorf("%w: %v%s", ErrWriteMarkdown, err, hints.ForFileError(err)))
		}
	}

	if res.HTML != nil {
		htmlPath := htmlOutputPath(path)
		if err := write(htmlPath, res.HTML, filePermissions); err != nil {
			return done(report.StatusWriteError, fmt.Errorf("%w: %s: %v", ErrWriteHTML, htmlPath, err))
		}
		entry.HTMLPath = htmlPath
	}

	return done(report.StatusProcessed, nil)
}

// htmlOutputPath returns the preview path next to a report.
func htmlOutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
}
