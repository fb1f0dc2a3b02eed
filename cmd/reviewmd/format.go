package main

import (
	"context"
	"errors"
	"fmt"

	reviewmd "github.com/alnah/go-reviewmd"
	"github.com/alnah/go-reviewmd/internal/assets"
	"github.com/alnah/go-reviewmd/internal/config"
	"github.com/alnah/go-reviewmd/internal/hints"
	"github.com/alnah/go-reviewmd/internal/pipeline"
	"github.com/alnah/go-reviewmd/internal/report"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for run outcomes reported after the per-file lines.
var (
	ErrFilesFailed    = errors.New("some files could not be processed")
	ErrChangesPending = errors.New("some files would be reformatted")
)

// runFormat orchestrates a format or check run.
func runFormat(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, paths, err := parseFormatFlags(cmd, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	if err := validateWorkers(flags.workers); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForWorkers(config.MaxWorkers))
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return withConfigHint(err)
	}

	if len(paths) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}

	check := cmd == cmdCheck
	rep := report.New(env.Stdout, env.Stderr, report.Options{
		Quiet:   flags.common.quiet,
		Verbose: flags.common.verbose,
		NoColor: flags.common.noColor || envCfg.NoColor,
		Check:   check,
	})
	if check && cfg.Output.HTML && flags.changed("html") {
		rep.Warn("--html is ignored by check")
	}

	targets := discoverTargets(paths, cfg.Input)
	if len(targets) == 0 {
		return fmt.Errorf("%w: no files matched in %v", ErrNoInput, paths)
	}

	var pending []string
	for _, t := range targets {
		if t.pending {
			pending = append(pending, t.path)
		}
	}

	if flags.common.verbose && len(pending) > 0 {
		fmt.Fprintf(env.Stdout, "Workers: %d\n", resolvePoolSize(cfg.Workers, len(pending)))
	}

	opts := []reviewmd.Option{
		reviewmd.WithHTMLTitle(cfg.Output.Title),
		reviewmd.WithCodeStyle(cfg.Output.CodeStyle),
	}
	if cfg.Output.HTML && !check {
		css, err := loadPreviewCSS(cfg.Output)
		if err != nil {
			return err
		}
		opts = append(opts, reviewmd.WithPreviewCSS(css))
	}
	formatter := reviewmd.NewFormatter(opts...)
	results := processBatch(ctx, formatter, pending, cfg.Workers, batchOptions{
		check:  check,
		force:  flags.force,
		dryRun: flags.dryRun,
		html:   cfg.Output.HTML,
		now:    env.Now,
	})

	entries := mergeEntries(targets, results)
	for _, e := range entries {
		rep.Entry(e)
	}
	summary := report.Tally(entries)
	rep.Summary(summary)

	return runOutcome(ctx, entries, summary, check)
}

// mergeEntries places batch results back among the pre-resolved targets,
// keeping argument order.
func mergeEntries(targets []target, results []report.Entry) []report.Entry {
	entries := make([]report.Entry, 0, len(targets))
	next := 0
	for _, t := range targets {
		if t.pending {
			entries = append(entries, results[next])
			next++
			continue
		}
		entries = append(entries, report.Entry{Path: t.path, Status: t.status, Err: t.err})
	}
	return entries
}

// runOutcome turns the entries of a finished run into the command error.
func runOutcome(ctx context.Context, entries []report.Entry, s report.Summary, check bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	notFound := 0
	for _, e := range entries {
		if e.Status == report.StatusNotFound {
			notFound++
		}
	}
	if notFound > 0 && notFound == len(entries) {
		return ErrNotFound
	}

	if s.Failed > 0 {
		return fmt.Errorf("%w: %d failed", ErrFilesFailed, s.Failed)
	}
	if check && s.WouldChange > 0 {
		return fmt.Errorf("%w: %d%s", ErrChangesPending, s.WouldChange, hints.ForCheckFailed())
	}
	return nil
}

// loadConfig loads the --config file, else the REVIEWMD_CONFIG file, else
// the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", withConfigHint(err))
	}
	return cfg, nil
}

// withConfigHint appends a hint to validation errors that have one.
func withConfigHint(err error) error {
	switch {
	case errors.Is(err, config.ErrUnknownCodeStyle):
		return fmt.Errorf("%w%s", err, hints.ForCodeStyle(pipeline.CodeStyles()))
	case errors.Is(err, config.ErrInvalidWorkers):
		return fmt.Errorf("%w%s", err, hints.ForWorkers(config.MaxWorkers))
	}
	return err
}

// loadPreviewCSS resolves the preview stylesheet from the asset path or the
// embedded styles.
func loadPreviewCSS(out config.OutputConfig) (string, error) {
	if out.Style == config.NoStyle {
		return "", nil
	}

	resolver, err := assets.NewResolver(out.AssetPath)
	if err != nil {
		return "", fmt.Errorf("loading preview style: %w", err)
	}

	name := out.Style
	if name == "" {
		name = assets.DefaultStyle
	}
	css, err := resolver.LoadStyle(name)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("loading preview style: %w%s", err, hints.ForStyleNotFound(resolver.Names()))
		}
		return "", fmt.Errorf("loading preview style: %w", err)
	}
	return css, nil
}

// mergeFlags applies flags that were set on the command line over cfg.
func mergeFlags(f *formatFlags, cfg *config.Config) {
	if f.changed("workers") {
		cfg.Workers = f.workers
	}
	if f.changed("include") {
		cfg.Input.Include = f.selection.include
	}
	if f.changed("exclude") {
		cfg.Input.Exclude = f.selection.exclude
	}
	if f.changed("html") {
		cfg.Output.HTML = f.preview.html
	}
	if f.changed("code-style") {
		cfg.Output.CodeStyle = f.preview.codeStyle
	}
	if f.changed("style") {
		cfg.Output.Style = f.preview.style
	}
}
