package rewrite

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// IsTransformed reports whether the first non-blank line of r starts with
// TransformedMarker. It stops reading at that line. A reader with no
// non-blank line, or one that fails before a decision, reports false.
func IsTransformed(r io.Reader) bool {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return strings.HasPrefix(trimmed, TransformedMarker)
		}
		if err != nil {
			return false
		}
	}
}
