package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// plainReport and plainMarkdown are one report before and after rewriting.
const (
	plainReport   = "File Path: a.md\n\nOverall Assessment:\nLooks fine.\n"
	plainMarkdown = "## File Path: `a.md`\n\n## Overall Assessment\nLooks fine."
)

// findingsReport has two findings under Key Findings.
const findingsReport = `File Path: svc/api.go
Key Findings and Suggestions:
* Errors:
  * Ignored error.
* Naming:
  * Short names.
`

// testEnv returns an Environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return base },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// run calls runMain with a background context and the program name prepended.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	env, stdout, stderr := testEnv()
	code := runMain(context.Background(), append([]string{"reviewmd"}, args...), env)
	return code, stdout.String(), stderr.String()
}

// writeFile creates dir/name (and parents) with content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
