package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-reviewmd/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // REVIEWMD_CONFIG: config file name or path
	CodeStyle  string // REVIEWMD_CODE_STYLE: chroma style for previews
	Style      string // REVIEWMD_STYLE: preview page stylesheet
	Workers    *int   // REVIEWMD_WORKERS: parallel workers, 0 = auto
	NoColor    bool   // REVIEWMD_NO_COLOR: plain output
}

// knownEnvVars lists valid REVIEWMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REVIEWMD_CONFIG":     true,
	"REVIEWMD_CODE_STYLE": true,
	"REVIEWMD_STYLE":      true,
	"REVIEWMD_WORKERS":    true,
	"REVIEWMD_NO_COLOR":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("REVIEWMD_CONFIG"),
		CodeStyle:  os.Getenv("REVIEWMD_CODE_STYLE"),
		Style:      os.Getenv("REVIEWMD_STYLE"),
	}

	if workers := os.Getenv("REVIEWMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w >= 0 {
			cfg.Workers = &w
		}
	}

	if noColor := os.Getenv("REVIEWMD_NO_COLOR"); noColor != "" {
		if b, err := strconv.ParseBool(noColor); err == nil {
			cfg.NoColor = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized REVIEWMD_* variables.
// Helps catch typos like REVIEWMD_WORKER instead of REVIEWMD_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "REVIEWMD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the loaded config.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CodeStyle != "" {
		cfg.Output.CodeStyle = env.CodeStyle
	}
	if env.Style != "" {
		cfg.Output.Style = env.Style
	}
	if env.Workers != nil {
		cfg.Workers = *env.Workers
	}
}
