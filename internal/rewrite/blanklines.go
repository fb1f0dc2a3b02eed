package rewrite

import (
	"regexp"
	"strings"
)

// multipleNewlines matches runs of two or more blank lines.
var multipleNewlines = regexp.MustCompile(`\n{3,}`)

// Normalize drops the leading blank run, collapses adjacent blank lines,
// joins the lines and trims the result. No run of three or more newlines
// survives.
func Normalize(lines []string) string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}

	deduped := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if isBlank(line) && len(deduped) > 0 && isBlank(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, line)
	}

	text := strings.TrimSpace(strings.Join(deduped, "\n"))
	return multipleNewlines.ReplaceAllString(text, "\n\n")
}
