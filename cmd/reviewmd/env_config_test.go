package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - Invalid worker counts and booleans are ignored, not errors.

import (
	"bytes"
	"testing"

	"github.com/alnah/go-reviewmd/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("reads all variables", func(t *testing.T) {
		t.Setenv("REVIEWMD_CONFIG", "/path/to/review.yaml")
		t.Setenv("REVIEWMD_CODE_STYLE", "monokai")
		t.Setenv("REVIEWMD_STYLE", "plain")
		t.Setenv("REVIEWMD_WORKERS", "4")
		t.Setenv("REVIEWMD_NO_COLOR", "true")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/path/to/review.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.CodeStyle != "monokai" {
			t.Errorf("CodeStyle = %q, want monokai", cfg.CodeStyle)
		}
		if cfg.Style != "plain" {
			t.Errorf("Style = %q, want plain", cfg.Style)
		}
		if cfg.Workers == nil || *cfg.Workers != 4 {
			t.Errorf("Workers = %v, want 4", cfg.Workers)
		}
		if !cfg.NoColor {
			t.Error("NoColor = false, want true")
		}
	})

	t.Run("zero workers means auto and is kept", func(t *testing.T) {
		t.Setenv("REVIEWMD_WORKERS", "0")

		cfg := loadEnvConfig()
		if cfg.Workers == nil || *cfg.Workers != 0 {
			t.Errorf("Workers = %v, want 0", cfg.Workers)
		}
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Setenv("REVIEWMD_WORKERS", "many")
		t.Setenv("REVIEWMD_NO_COLOR", "perhaps")

		cfg := loadEnvConfig()
		if cfg.Workers != nil {
			t.Errorf("Workers = %v, want nil", *cfg.Workers)
		}
		if cfg.NoColor {
			t.Error("NoColor = true, want false")
		}
	})

	t.Run("negative workers are ignored", func(t *testing.T) {
		t.Setenv("REVIEWMD_WORKERS", "-2")

		if cfg := loadEnvConfig(); cfg.Workers != nil {
			t.Errorf("Workers = %v, want nil", *cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Unknown variable detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("warns on unknown REVIEWMD_ vars", func(t *testing.T) {
		t.Setenv("REVIEWMD_WORKER", "2")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !bytes.Contains(buf.Bytes(), []byte("REVIEWMD_WORKER ")) {
			t.Errorf("should warn about REVIEWMD_WORKER, got: %s", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("typo?")) {
			t.Errorf("should suggest typo, got: %s", buf.String())
		}
	})

	t.Run("no warning for known vars", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "1")
		}

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if buf.Len() > 0 {
			t.Errorf("should not warn for known vars, got: %s", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config values", func(t *testing.T) {
		t.Parallel()

		workers := 0
		cfg := config.DefaultConfig()
		cfg.Output.CodeStyle = "dracula"
		cfg.Workers = 3

		applyEnvConfig(&envConfig{CodeStyle: "monokai", Style: "plain", Workers: &workers}, cfg)

		if cfg.Output.CodeStyle != "monokai" {
			t.Errorf("CodeStyle = %q, want monokai", cfg.Output.CodeStyle)
		}
		if cfg.Output.Style != "plain" {
			t.Errorf("Style = %q, want plain", cfg.Output.Style)
		}
		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
	})

	t.Run("unset env leaves config alone", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.CodeStyle = "dracula"
		cfg.Workers = 3

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.CodeStyle != "dracula" || cfg.Workers != 3 {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestEnvPrecedence - flags > env > config file
// ---------------------------------------------------------------------------

func TestEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", plainReport)
	t.Setenv("REVIEWMD_CODE_STYLE", "no-such-style")

	if code, _, _ := run(t, "-q", path); code != ExitUsage {
		t.Errorf("env code style should be validated, exit = %d", code)
	}
	if code, _, stderr := run(t, "-q", "--code-style", "github", path); code != ExitSuccess {
		t.Errorf("flag should override env, exit = %d\nstderr: %s", code, stderr)
	}
}
