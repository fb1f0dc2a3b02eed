package rewrite

import (
	"regexp"
	"strings"
)

// Indentation cut points for list items. They are tuned against real
// reports: finding bullets need at least two leading spaces, recommendation
// sub-items with eight or more keep their own indentation.
const (
	minFindingIndent = 2
	minSubItemIndent = 1
	deepSubItemDepth = 8
	subItemIndent    = "    "
)

var (
	// findingBullet matches an indented "*" bullet under a finding heading.
	findingBullet = regexp.MustCompile(`^\s{2,}\*\s+(.*)`)

	// numberedItem matches "1. text" after trimming.
	numberedItem = regexp.MustCompile(`^\d+\.\s+.*`)

	// subItem captures indentation, marker and text of a "*" or "-" bullet.
	subItem = regexp.MustCompile(`^(\s*)(\*|-)\s+(.*)`)
)

// Structure normalizes list markup per section and trims every other line.
// It consumes the output of Headings. Adjacent blank lines are collapsed as
// they are emitted.
func Structure(lines []string) []string {
	out := make([]string, 0, len(lines))
	current := sectionNone
	inFinding := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == findingsHeading:
			out = append(out, trimmed)
			current, inFinding = sectionKeyFindings, false
			continue
		case trimmed == recommendationsHeading:
			out = append(out, trimmed)
			current, inFinding = sectionRecommendations, false
			continue
		case strings.HasPrefix(trimmed, h2Prefix):
			out = append(out, trimmed)
			current, inFinding = sectionNone, false
			continue
		case strings.HasPrefix(trimmed, h3Prefix):
			out = append(out, trimmed)
			inFinding = true
			continue
		}

		if current == sectionKeyFindings && inFinding {
			if item, ok := findingItem(line); ok {
				out = append(out, item)
				continue
			}
		}

		if current == sectionRecommendations {
			if numberedItem.MatchString(trimmed) {
				out = append(out, trimmed)
				continue
			}
			if item, ok := recommendationItem(line); ok {
				out = append(out, item)
				continue
			}
		}

		if trimmed != "" {
			out = append(out, trimmed)
		} else if len(out) == 0 || !isBlank(out[len(out)-1]) {
			out = append(out, "")
		}
	}

	return out
}

// findingItem turns an indented "*" bullet into a top-level "-" item.
// An empty bullet becomes a bare "-", which later runs keep as is.
func findingItem(line string) (string, bool) {
	m := findingBullet.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(m[1])
	if text == "" {
		return "-", true
	}
	return "- " + text, true
}

// recommendationItem normalizes an indented "*" or "-" bullet. Shallow
// indentation is snapped to four spaces, deep indentation is kept as is.
// Unindented bullets are not list items here and report false. An empty
// bullet is reduced to its bare marker so that a second run leaves it alone.
func recommendationItem(line string) (string, bool) {
	m := subItem.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	indent, marker, rest := m[1], m[2], strings.TrimSpace(m[3])

	switch {
	case len(indent) >= minSubItemIndent && rest == "":
		return marker, true
	case len(indent) >= deepSubItemDepth:
		return indent + marker + " " + rest, true
	case len(indent) >= minSubItemIndent:
		return subItemIndent + marker + " " + rest, true
	default:
		return "", false
	}
}
