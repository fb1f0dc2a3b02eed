// Package report prints per-file statuses and the run summary of a
// reviewmd batch. Labels are styled with lipgloss when the output is a
// terminal and plain otherwise.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status is the outcome of one file.
type Status int

const (
	StatusProcessed          Status = iota // rewritten and written
	StatusWouldChange                      // check mode: rewrite differs from the file
	StatusUnchanged                        // check mode: rewrite equals the file
	StatusSkippedExtension                 // not an eligible extension
	StatusSkippedTransformed               // already starts with the File Path heading
	StatusNotFound                         // path does not exist
	StatusReadError                        // file could not be read
	StatusWriteError                       // rewrite or preview could not be written
	StatusRenderError                      // preview could not be rendered, nothing written
	StatusCanceled                         // run interrupted before the file started
)

// String returns a short lowercase name for logs and tests.
func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusWouldChange:
		return "would change"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkippedExtension:
		return "skipped (non-markdown)"
	case StatusSkippedTransformed:
		return "skipped (already transformed)"
	case StatusNotFound:
		return "not found"
	case StatusReadError:
		return "error reading"
	case StatusWriteError:
		return "error writing"
	case StatusRenderError:
		return "error rendering"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Failed reports whether the status counts as a failure.
func (s Status) Failed() bool {
	switch s {
	case StatusNotFound, StatusReadError, StatusWriteError, StatusRenderError, StatusCanceled:
		return true
	}
	return false
}

// Skipped reports whether the status counts as a skip.
func (s Status) Skipped() bool {
	return s == StatusSkippedExtension || s == StatusSkippedTransformed
}

// Entry is the reported outcome of one path.
type Entry struct {
	Path     string
	Status   Status
	Err      error         // set for read, write and render errors
	Duration time.Duration // verbose only
	Findings int           // verbose only
	HTMLPath string        // preview written next to the file, if any
}

// Summary counts entries by outcome.
type Summary struct {
	Processed   int
	Skipped     int
	Failed      int
	WouldChange int
}

// Tally counts entries. Processed includes check-mode files that were
// examined without being written.
func Tally(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch {
		case e.Status.Failed():
			s.Failed++
		case e.Status.Skipped():
			s.Skipped++
		default:
			s.Processed++
			if e.Status == StatusWouldChange {
				s.WouldChange++
			}
		}
	}
	return s
}

// Options controls reporter verbosity and styling.
type Options struct {
	Quiet   bool // only failures
	Verbose bool // durations and finding counts
	NoColor bool // never style, even on a terminal
	Check   bool // summary for a check run
}

// Reporter writes entries and summaries. Failures go to the error writer.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	opts   Options

	ok   lipgloss.Style
	skip lipgloss.Style
	fail lipgloss.Style
	bold lipgloss.Style
}

// New creates a Reporter. Each writer gets its own renderer so that color
// detection follows the writer rather than the process stdout.
func New(out, errOut io.Writer, opts Options) *Reporter {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	if opts.NoColor {
		outR.SetColorProfile(termenv.Ascii)
		errR.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		out:    out,
		errOut: errOut,
		opts:   opts,
		ok:     outR.NewStyle().Foreground(lipgloss.Color("2")),
		skip:   outR.NewStyle().Foreground(lipgloss.Color("8")),
		fail:   errR.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		bold:   outR.NewStyle().Bold(true),
	}
}

// Entry prints the line for one file.
func (r *Reporter) Entry(e Entry) {
	if e.Status.Failed() {
		fmt.Fprintln(r.errOut, r.failLine(e))
		return
	}
	if r.opts.Quiet {
		return
	}

	line := r.line(e)
	if r.opts.Verbose && !e.Status.Skipped() {
		line += fmt.Sprintf(" (%v, %d findings)", e.Duration.Round(time.Millisecond), e.Findings)
	}
	fmt.Fprintln(r.out, line)

	if e.HTMLPath != "" && r.opts.Verbose {
		fmt.Fprintf(r.out, "%s %s\n", r.ok.Render("Wrote preview:"), e.HTMLPath)
	}
}

func (r *Reporter) line(e Entry) string {
	switch e.Status {
	case StatusProcessed:
		return r.ok.Render("Processing file:") + " " + e.Path
	case StatusWouldChange:
		return r.bold.Render("Would reformat:") + " " + e.Path
	case StatusUnchanged:
		return r.skip.Render("Already formatted:") + " " + e.Path
	case StatusSkippedExtension:
		return r.skip.Render("Skipping non-markdown file:") + " " + e.Path
	case StatusSkippedTransformed:
		return r.skip.Render("Skipping already transformed file:") + " " + e.Path
	default:
		return e.Path
	}
}

func (r *Reporter) failLine(e Entry) string {
	switch e.Status {
	case StatusNotFound:
		return r.fail.Render("Error:") + " File not found at " + e.Path
	case StatusReadError:
		return r.fail.Render("Error reading file") + " " + e.Path + ": " + errText(e.Err)
	case StatusWriteError:
		return r.fail.Render("Error writing to file") + " " + e.Path + ": " + errText(e.Err)
	case StatusRenderError:
		return r.fail.Render("Error rendering preview for") + " " + e.Path + ": " + errText(e.Err)
	default:
		return r.fail.Render("Canceled:") + " " + e.Path
	}
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// Summary prints the closing counts. Quiet runs print nothing.
func (r *Reporter) Summary(s Summary) {
	if r.opts.Quiet {
		return
	}

	fmt.Fprintln(r.out)
	if r.opts.Check {
		fmt.Fprintln(r.out, r.bold.Render("Check complete."))
		fmt.Fprintf(r.out, "Files checked: %d\n", s.Processed)
		fmt.Fprintf(r.out, "Files that would change: %d\n", s.WouldChange)
	} else {
		fmt.Fprintln(r.out, r.bold.Render("Transformation complete."))
		fmt.Fprintf(r.out, "Files processed: %d\n", s.Processed)
	}
	fmt.Fprintf(r.out, "Files skipped (already transformed or non-markdown): %d\n", s.Skipped)
	if s.Failed > 0 {
		fmt.Fprintf(r.out, "Files failed: %d\n", s.Failed)
	}
}

// Warn prints a warning line to the error writer, even in quiet mode.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.errOut, "%s %s\n", r.fail.Render("warning:"), fmt.Sprintf(format, args...))
}
