// Package rewrite turns plaintext review reports into normalized Markdown.
//
// The rewrite runs as a pipeline of pure stages over the document's lines:
//   - line splitting (CRLF and CR normalized to LF)
//   - Headings: section labels become H2, finding labels become H3
//   - Structure: bullets are normalized per section, lines are trimmed
//   - Normalize: leading blanks dropped, blank runs collapsed, text trimmed
//
// Each stage returns a new slice. Section state is threaded through a single
// forward scan per stage and never outlives one call, so Document is safe for
// concurrent use.
package rewrite
