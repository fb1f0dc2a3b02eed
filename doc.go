// Package reviewmd rewrites plaintext code review reports into Markdown.
//
// # Quick Start
//
// Rewrite a report held in memory:
//
//	md := reviewmd.Transform(report)
//
// Transform is pure and total: unrecognized lines are trimmed and kept, never
// rejected.
//
// # Report Shape
//
// A report is made of labeled sections:
//
//	File Path: internal/server/handler.go
//	Overall Assessment:
//	Key Findings and Suggestions:
//	* Error Handling:
//	  * Errors from Decode are ignored.
//	Actionable Recommendations:
//	1. Return decode errors.
//	   * Use fmt.Errorf with %w.
//
// Labels become H2 headings, finding labels become H3 headings, finding
// bullets become "- " items and recommendation sub-items are indented by
// four spaces (eight or more spaces of indentation are kept as is).
//
// # Skipping Rewritten Files
//
// Rewriting twice is harmless, but callers processing files in place should
// skip documents that already start with the rewritten file heading:
//
//	if reviewmd.IsTransformedFile(path) {
//	    return // already done
//	}
//
// # Formatter
//
// Formatter wraps Transform with a heading outline and an optional HTML
// preview:
//
//	f := reviewmd.NewFormatter(reviewmd.WithCodeStyle("monokai"))
//	result, err := f.Format(ctx, reviewmd.Input{Markdown: report, HTML: true})
//
// A Formatter holds no per-document state and may be shared by goroutines.
package reviewmd
