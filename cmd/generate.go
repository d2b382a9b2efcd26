package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scmtools/gitlog/config"
	"github.com/scmtools/gitlog/internal/changelog"
	"github.com/scmtools/gitlog/internal/filter"
	gitpkg "github.com/scmtools/gitlog/internal/git"
	"github.com/scmtools/gitlog/internal/logging"
	"github.com/scmtools/gitlog/internal/render"
	"github.com/urfave/cli/v2"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     "Generate a changelog from commit history",
		ArgsUsage: "[repository path]",
		Flags:     generateFlags(),
		Action:    generateAction,
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Report title",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Only include commits after this date (YYYY-MM-DD)",
		},
		&cli.StringSliceFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, text, markdown, html, json, yaml; can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory for file-backed formats",
		},
		&cli.BoolFlag{
			Name:  "skip-tags",
			Usage: "Do not emit release tag headings",
		},
		&cli.StringFlag{
			Name:  "tag-pattern",
			Usage: "Glob restricting which tag names appear, e.g. \"v*\"",
		},
		&cli.BoolFlag{
			Name:  "no-merges",
			Usage: "Exclude merge commits",
		},
		&cli.StringFlag{
			Name:  "include",
			Usage: "Only include commits whose message matches this regex",
		},
		&cli.StringFlag{
			Name:  "exclude",
			Usage: "Exclude commits whose message matches this regex",
		},
		&cli.StringSliceFlag{
			Name:  "author",
			Usage: "Only include commits by matching authors (glob on name or email; can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "dedupe",
			Usage: "Drop commits repeating an already emitted subject line",
		},
		&cli.StringFlag{
			Name:  "issue-url",
			Usage: "Issue tracker URL prefix for linking #NNN references",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Diagnostic log level (none, info, debug)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
	}
}

func generateAction(c *cli.Context) error {
	start := time.Now()

	cfg, err := applyGenerateFlags(c)
	if err != nil {
		return err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	filters, err := buildFilters(cfg)
	if err != nil {
		return fmt.Errorf("failed to build filters: %w", err)
	}

	// Repository path comes from the flag, overridden by a positional arg.
	repoPath := c.String("repo")
	if c.NArg() > 0 {
		repoPath = c.Args().Get(0)
	}

	renderers, err := buildRenderers(cfg)
	if err != nil {
		return fmt.Errorf("failed to build renderers: %w", err)
	}

	gen := changelog.New(changelog.Options{
		Renderers:  renderers,
		Filters:    filters,
		SkipTags:   cfg.Tags.Skip,
		TagPattern: cfg.Tags.Pattern,
		Logger:     logger,
	})

	if err := gen.Open(repoPath); err != nil {
		closeRenderers(renderers)
		if errors.Is(err, gitpkg.ErrNoRepository) {
			return fmt.Errorf("invalid Git repository - please run from or specify the full path to the root of the project: %w", err)
		}
		return err
	}

	// Generate closes every renderer, on failure as well as success.
	if since != nil {
		err = gen.Generate(cfg.Report.Title, *since)
	} else {
		err = gen.GenerateAll(cfg.Report.Title)
	}
	if err != nil {
		return fmt.Errorf("failed to generate changelog: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(start))
	return nil
}

// applyGenerateFlags merges CLI flag overrides into the loaded configuration.
func applyGenerateFlags(c *cli.Context) (*config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	if title := c.String("title"); title != "" {
		cfg.Report.Title = title
	}
	if formats := c.StringSlice("format"); len(formats) > 0 {
		cfg.Report.Formats = formats
	}
	if dir := c.String("output-dir"); dir != "" {
		cfg.Report.OutputDir = dir
	}
	if url := c.String("issue-url"); url != "" {
		cfg.Report.IssueURL = url
	}
	if c.Bool("skip-tags") {
		cfg.Tags.Skip = true
	}
	if pattern := c.String("tag-pattern"); pattern != "" {
		cfg.Tags.Pattern = pattern
	}
	if c.Bool("no-merges") {
		cfg.Filters.NoMerges = true
	}
	if include := c.String("include"); include != "" {
		cfg.Filters.Include = include
	}
	if exclude := c.String("exclude"); exclude != "" {
		cfg.Filters.Exclude = exclude
	}
	if authors := c.StringSlice("author"); len(authors) > 0 {
		cfg.Filters.Authors = authors
	}
	if c.Bool("dedupe") {
		cfg.Filters.DedupeSubjects = true
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// buildFilters assembles the filter chain described by the configuration.
// Chain order mirrors cost: cheap structural checks first, regexes after.
func buildFilters(cfg *config.Config) (filter.Chain, error) {
	var chain filter.Chain

	if cfg.Filters.NoMerges {
		chain = append(chain, filter.NewMergeFilter())
	}
	if cfg.Filters.Include != "" {
		f, err := filter.NewMessageFilter(cfg.Filters.Include, false)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	if cfg.Filters.Exclude != "" {
		f, err := filter.NewMessageFilter(cfg.Filters.Exclude, true)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	if len(cfg.Filters.Authors) > 0 {
		f, err := filter.NewAuthorFilter(cfg.Filters.Authors)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	if cfg.Filters.DedupeSubjects {
		chain = append(chain, filter.NewDedupeFilter())
	}

	return chain, nil
}

// buildRenderers opens one renderer per configured format. Console output
// goes to stdout; every other format writes its conventional filename under
// the output directory.
func buildRenderers(cfg *config.Config) ([]render.Renderer, error) {
	opts := render.Options{IssueURL: cfg.Report.IssueURL}
	renderers := make([]render.Renderer, 0, len(cfg.Report.Formats))

	for _, name := range cfg.Report.Formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			closeRenderers(renderers)
			return nil, err
		}

		if format == render.FormatConsole {
			r, err := render.New(format, os.Stdout, opts)
			if err != nil {
				closeRenderers(renderers)
				return nil, err
			}
			renderers = append(renderers, r)
			continue
		}

		path := filepath.Join(cfg.Report.OutputDir, format.DefaultFilename())
		r, err := render.Open(format, path, opts)
		if err != nil {
			closeRenderers(renderers)
			return nil, err
		}
		renderers = append(renderers, r)
	}

	return renderers, nil
}

func closeRenderers(renderers []render.Renderer) {
	for _, r := range renderers {
		_ = r.Close()
	}
}
