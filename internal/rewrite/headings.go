package rewrite

import (
	"regexp"
	"strings"
)

// findingLabel matches "* Some title:" once the line is trimmed.
var findingLabel = regexp.MustCompile(`^\*\s+(.+?):$`)

// Headings rewrites section labels into H2 headings and, inside the key
// findings section, "* Title:" labels into H3 headings. Every other line is
// returned untouched, so the output has exactly as many lines as the input.
func Headings(lines []string) []string {
	out := make([]string, 0, len(lines))
	current := sectionNone

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, filePathLabel):
			path := strings.TrimSpace(trimmed[len(filePathLabel):])
			out = append(out, filePathHeading+"`"+path+"`")
			continue
		case trimmed == overallLabel:
			out = append(out, overallHeading)
			current = sectionNone
			continue
		case trimmed == findingsLabel:
			out = append(out, findingsHeading)
			current = sectionKeyFindings
			continue
		case trimmed == recommendationsLabel:
			out = append(out, recommendationsHeading)
			current = sectionRecommendations
			continue
		}

		if current == sectionKeyFindings {
			if m := findingLabel.FindStringSubmatch(trimmed); m != nil {
				out = append(out, h3Prefix+strings.TrimSpace(m[1]))
				continue
			}
		}

		out = append(out, line)
	}

	return out
}
