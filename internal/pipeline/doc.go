// Package pipeline implements the Markdown stages that run after a report
// has been rewritten:
//   - heading outline extraction from the goldmark AST
//   - standalone HTML preview rendering via goldmark, with code blocks
//     highlighted by chroma
//
// The rewrite itself lives in internal/rewrite and never depends on this
// package. Nothing here modifies the Markdown text.
package pipeline
