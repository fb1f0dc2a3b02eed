package hints

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "me", ".config", "go-reviewmd", "team.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"team.yaml", "team.yml", userPath},
			contains: []string{"--config", "or create " + userPath},
		},
		{
			name:     "no user path",
			paths:    []string{"team.yaml", "team.yml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
		{
			name:     "nil paths",
			paths:    nil,
			contains: []string{"hint:"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, s := range tt.contains {
				if !strings.Contains(hint, s) {
					t.Errorf("hint %q should contain %q", hint, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(hint, s) {
					t.Errorf("hint %q should not contain %q", hint, s)
				}
			}
		})
	}
}

func TestForCodeStyle(t *testing.T) {
	t.Parallel()

	if got := ForCodeStyle(nil); got != "" {
		t.Errorf("ForCodeStyle(nil) = %q, want empty", got)
	}

	got := ForCodeStyle([]string{"github", "monokai"})
	if got != "\n  hint: available: github, monokai" {
		t.Errorf("ForCodeStyle() = %q", got)
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"plain", "review"})
	for _, want := range []string{"available: plain, review, none", "styles/<name>.css"} {
		if !strings.Contains(got, want) {
			t.Errorf("ForStyleNotFound() = %q, want %q", got, want)
		}
	}
}

func TestForWorkers(t *testing.T) {
	t.Parallel()

	got := ForWorkers(32)
	if !strings.Contains(got, "between 1 and 32") {
		t.Errorf("ForWorkers(32) = %q, want range", got)
	}
}

func TestForFileError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"permission", &fs.PathError{Op: "open", Path: "x.md", Err: fs.ErrPermission}, "permissions"},
		{"not exist", &fs.PathError{Op: "open", Path: "x.md", Err: fs.ErrNotExist}, "check the path"},
		{"wrapped permission", fmt.Errorf("write: %w", os.ErrPermission), "permissions"},
		{"other", fmt.Errorf("disk full"), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForFileError(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("ForFileError() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForFileError() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("x"); got != "\n  hint: x" {
		t.Errorf("format(\"x\") = %q", got)
	}
	if !strings.HasPrefix(ForNoInput(), "\n  hint: ") || !strings.HasPrefix(ForCheckFailed(), "\n  hint: ") {
		t.Error("static hints should use the hint prefix")
	}
}
