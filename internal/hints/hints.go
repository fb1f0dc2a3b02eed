// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level location that was tried
	marker := string(filepath.Separator) + "go-reviewmd" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForCodeStyle returns hints for unknown highlighting style errors.
func ForCodeStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForStyleNotFound returns hints for preview stylesheet errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", none; custom styles go in <assetPath>/styles/<name>.css")
}

// ForWorkers returns the accepted worker range.
func ForWorkers(maxWorkers int) string {
	return format("use 0 for auto or a value between 1 and " + strconv.Itoa(maxWorkers))
}

// ForNoInput returns a usage hint when no path was given.
func ForNoInput() string {
	return format("pass one or more report files or directories, e.g. reviewmd review.md")
}

// ForFileError returns hints for read or write failures on a report.
// Inspects the error to tell permission problems from missing files.
func ForFileError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrPermission):
		return format("check file permissions or run from a writable directory")
	case errors.Is(err, fs.ErrNotExist):
		return format("check the path; directories are searched with --include patterns")
	default:
		return ""
	}
}

// ForCheckFailed tells the user how to apply pending rewrites.
func ForCheckFailed() string {
	return format("run reviewmd without 'check' to rewrite these files")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
