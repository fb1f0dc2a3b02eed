// Package config loads reviewmd settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-reviewmd/internal/assets"
	"github.com/alnah/go-reviewmd/internal/fileutil"
	"github.com/alnah/go-reviewmd/internal/pipeline"
	"github.com/alnah/go-reviewmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidExtension = errors.New("invalid extension")
	ErrInvalidPattern   = errors.New("invalid glob pattern")
	ErrUnknownCodeStyle = errors.New("unknown code style")
	ErrInvalidWorkers   = errors.New("invalid worker count")
)

// Limits keep config values sane.
const (
	MaxTitleLength   = 200
	MaxPatternLength = 512
	MaxPatterns      = 64
	MaxWorkers       = 32
	MaxPathLength    = 4096
)

// NoStyle as output.style disables the preview page stylesheet.
const NoStyle = "none"

// DefaultExtensions matches the behavior of the tool without a config file.
var DefaultExtensions = []string{".md"}

// Config holds all reviewmd settings.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto, default 1
}

// InputConfig selects the documents to rewrite.
type InputConfig struct {
	Extensions []string `yaml:"extensions"` // eligible suffixes for file arguments
	Include    []string `yaml:"include"`    // doublestar patterns for directory arguments, empty = by extension
	Exclude    []string `yaml:"exclude"`    // doublestar patterns removed from directory walks
}

// OutputConfig controls what is written next to each rewritten document.
type OutputConfig struct {
	HTML      bool   `yaml:"html"`      // write <name>.html preview
	CodeStyle string `yaml:"codeStyle"` // chroma style for previews
	Title     string `yaml:"title"`     // preview <title>, empty = "Code Review"
	Style     string `yaml:"style"`     // page stylesheet name, "none" to disable
	AssetPath string `yaml:"assetPath"` // directory with styles/{name}.css overrides
}

// Validate checks field values.
// Called automatically by LoadConfig, but available for callers that
// construct a Config manually.
func (c *Config) Validate() error {
	if len(c.Input.Extensions) == 0 {
		return fmt.Errorf("%w: input.extensions: at least one extension required", ErrInvalidExtension)
	}
	for i, ext := range c.Input.Extensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: input.extensions[%d]: %v", ErrInvalidExtension, i, err)
		}
	}

	if err := validatePatterns("input.include", c.Input.Include); err != nil {
		return err
	}
	if err := validatePatterns("input.exclude", c.Input.Exclude); err != nil {
		return err
	}

	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if c.Output.Style != "" {
		if err := assets.ValidateAssetName(c.Output.Style); err != nil {
			return fmt.Errorf("output.style: %w", err)
		}
	}
	if err := validateFieldLength("output.assetPath", c.Output.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if c.Output.CodeStyle != "" && !pipeline.HasCodeStyle(c.Output.CodeStyle) {
		return fmt.Errorf("%w: output.codeStyle: %q", ErrUnknownCodeStyle, c.Output.CodeStyle)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	return nil
}

// validatePatterns checks count, length and syntax of doublestar patterns.
func validatePatterns(field string, patterns []string) error {
	if len(patterns) > MaxPatterns {
		return fmt.Errorf("%w: %s: %d patterns (max %d)", ErrInvalidPattern, field, len(patterns), MaxPatterns)
	}
	for i, p := range patterns {
		name := fmt.Sprintf("%s[%d]", field, i)
		if err := validateFieldLength(name, p, MaxPatternLength); err != nil {
			return err
		}
		if strings.TrimSpace(p) == "" || !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidPattern, name, p)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used when no config file is given:
// ".md" files, sequential processing, no HTML preview.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		Output: OutputConfig{
			CodeStyle: pipeline.DefaultCodeStyle,
			Style:     assets.DefaultStyle,
		},
		Workers: 1,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-reviewmd", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
