package rewrite

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// section identifies which top-level report section a line belongs to.
type section int

const (
	sectionNone section = iota
	sectionKeyFindings
	sectionRecommendations
)

// Report labels as they appear in the plaintext input.
const (
	filePathLabel        = "File Path: "
	overallLabel         = "Overall Assessment:"
	findingsLabel        = "Key Findings and Suggestions:"
	recommendationsLabel = "Actionable Recommendations:"
)

// Headings emitted for the labels above.
const (
	h2Prefix               = "## "
	h3Prefix               = "### "
	filePathHeading        = h2Prefix + filePathLabel
	overallHeading         = "## Overall Assessment"
	findingsHeading        = "## Key Findings and Suggestions"
	recommendationsHeading = "## Actionable Recommendations"
)

// TransformedMarker starts the first non-blank line of every rewritten report.
const TransformedMarker = filePathHeading + "`"

// SplitLines splits content into lines after normalizing line endings.
// A trailing newline does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Document runs the full rewrite on a report and returns the Markdown text.
func Document(content string) string {
	return Normalize(Structure(Headings(SplitLines(content))))
}
