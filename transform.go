package reviewmd

import (
	"io"
	"os"

	"github.com/alnah/go-reviewmd/internal/rewrite"
)

// TransformedMarker starts the first non-blank line of a rewritten report.
const TransformedMarker = rewrite.TransformedMarker

// Transform rewrites a plaintext review report into Markdown.
func Transform(content string) string {
	return rewrite.Document(content)
}

// IsTransformed reports whether the report read from r has already been
// rewritten. Only the first non-blank line is read. Read errors report false
// so that a failing source is processed rather than silently skipped.
func IsTransformed(r io.Reader) bool {
	return rewrite.IsTransformed(r)
}

// IsTransformedFile is IsTransformed for a file path. A file that cannot be
// opened reports false.
func IsTransformedFile(path string) bool {
	f, err := os.Open(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	return rewrite.IsTransformed(f)
}
