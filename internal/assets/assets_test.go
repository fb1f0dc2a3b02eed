package assets

// Notes:
// - FilesystemLoader symlink escape is skipped on Windows where creating
//   symlinks needs extra privileges.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "review", false},
		{"dash and digits", "team-2025", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"extension", "review.css", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ValidateAssetName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	l := NewEmbeddedLoader()

	if names := l.Names(); !slices.Equal(names, []string{"plain", "review"}) {
		t.Errorf("Names() = %v, want [plain review]", names)
	}

	css, err := l.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	if !strings.Contains(css, "h3") {
		t.Error("review style should style finding headings")
	}
	if DefaultCSS() != css {
		t.Error("DefaultCSS() should return the review style")
	}

	if _, err := l.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) = %v, want ErrStyleNotFound", err)
	}
	if _, err := l.LoadStyle("../styles/review"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(traversal) = %v, want ErrInvalidAssetName", err)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader
// ---------------------------------------------------------------------------

func writeStyle(t *testing.T, base, name, css string) {
	t.Helper()
	dir := filepath.Join(base, "styles")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(css), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	for name, path := range map[string]string{
		"empty":   "",
		"missing": filepath.Join(t.TempDir(), "nope"),
		"not dir": file,
	} {
		if _, err := NewFilesystemLoader(path); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("%s: error = %v, want ErrInvalidBasePath", name, err)
		}
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "team", "body { color: red; }")

	l, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	css, err := l.LoadStyle("team")
	if err != nil || css != "body { color: red; }" {
		t.Errorf("LoadStyle(team) = %q, %v", css, err)
	}
	if _, err := l.LoadStyle("other"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(other) = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o600); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Fatal(err)
	}

	l, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolver
// ---------------------------------------------------------------------------

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if css, err := r.LoadStyle("plain"); err != nil || !strings.Contains(css, "serif") {
			t.Errorf("LoadStyle(plain) = %q, %v", css, err)
		}
		if len(r.Names()) == 0 {
			t.Error("Names() should list embedded styles")
		}
	})

	t.Run("custom overrides embedded and falls back", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeStyle(t, base, "review", "/* custom */")

		r, err := NewResolver(base)
		if err != nil {
			t.Fatal(err)
		}
		if css, _ := r.LoadStyle("review"); css != "/* custom */" {
			t.Errorf("LoadStyle(review) = %q, want custom", css)
		}
		if css, err := r.LoadStyle("plain"); err != nil || !strings.Contains(css, "serif") {
			t.Errorf("LoadStyle(plain) = %q, %v, want embedded fallback", css, err)
		}
		if _, err := r.LoadStyle("nowhere"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(nowhere) = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid names do not fall back", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadStyle("a/b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(a/b) = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() = %v, want ErrInvalidBasePath", err)
		}
	})
}
