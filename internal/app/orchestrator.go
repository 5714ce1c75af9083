package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/ebrandao/srcbundle/internal/config"
	"github.com/ebrandao/srcbundle/internal/domain"
	"github.com/ebrandao/srcbundle/internal/gitsrc"
	"github.com/ebrandao/srcbundle/internal/manifest"
	"github.com/ebrandao/srcbundle/internal/output"
	"github.com/ebrandao/srcbundle/internal/scanner"
	"github.com/ebrandao/srcbundle/internal/utils"
)

// Orchestrator coordinates the bundle pipeline: reset, discovery, filter,
// write, summary
type Orchestrator struct {
	cfg     *config.Config
	opts    domain.CommonOptions
	fs      afero.Fs
	logger  *utils.Logger
	fetcher *gitsrc.Fetcher
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	domain.CommonOptions
	Config  *config.Config
	Fs      afero.Fs
	Logger  *utils.Logger
	Fetcher *gitsrc.Fetcher
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if opts.Verbose {
			logLevel = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = gitsrc.NewFetcher(gitsrc.FetcherOptions{
			Logger: logger.WithComponent("gitsrc"),
		})
	}

	return &Orchestrator{
		cfg:     cfg,
		opts:    opts.CommonOptions,
		fs:      fs,
		logger:  logger,
		fetcher: fetcher,
	}, nil
}

// Run executes one bundle for the given source, which is either a local
// directory or a remote repository URL. An empty source falls back to the
// configured root.
func (o *Orchestrator) Run(ctx context.Context, source string) (*domain.Summary, error) {
	root := source
	if root == "" {
		root = o.cfg.Root
	}
	if root == "" {
		return nil, domain.ErrNoSource
	}

	// The summary reports what the user named, not a temp clone dir.
	displayRoot := root

	if gitsrc.IsRemote(root) {
		dir, cleanup, err := o.fetcher.Fetch(ctx, root)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		root = dir
	}

	return o.bundle(ctx, root, displayRoot, o.cfg.Output.Path, scanner.FilterOptions{
		Extension:        o.cfg.Filter.Extension,
		ExcludeDirs:      o.cfg.Filter.ExcludeDirs,
		ExcludeBasenames: o.cfg.Filter.ExcludeBasenames,
	}, o.cfg.Output.Compress)
}

// RunManifest executes every profile in a manifest, sequentially and in
// order. Without continue_on_error the first failing profile aborts the
// remaining ones.
func (o *Orchestrator) RunManifest(ctx context.Context, manifestCfg *manifest.Config) error {
	startTime := time.Now()
	total := len(manifestCfg.Profiles)

	o.logger.Info().
		Int("profiles", total).
		Bool("continue_on_error", manifestCfg.Options.ContinueOnError).
		Msg("Starting manifest run")

	var firstErr error
	failed := 0

	for i, profile := range manifestCfg.Profiles {
		o.logger.Info().
			Int("profile_idx", i).
			Str("name", profile.Name).
			Str("root", profile.Root).
			Int("total", total).
			Msg("Running profile")

		_, err := o.bundle(ctx, profile.Root, profile.Root, profile.Output, scanner.FilterOptions{
			Extension:        profile.Extension,
			ExcludeDirs:      profile.ExcludeDirs,
			ExcludeBasenames: profile.ExcludeBasenames,
		}, profile.Compressed(manifestCfg.Options))
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("profile %d (%s): %w", i, profile.Name, err)
			}
			o.logger.Error().Err(err).Str("name", profile.Name).Msg("Profile failed")
			if !manifestCfg.Options.ContinueOnError {
				break
			}
		}
	}

	o.logger.Info().
		Dur("total_duration", time.Since(startTime)).
		Int("total", total).
		Int("failed", failed).
		Msg("Manifest run completed")

	return firstErr
}

func (o *Orchestrator) bundle(ctx context.Context, root, displayRoot, outputPath string, filterOpts scanner.FilterOptions, compress bool) (*domain.Summary, error) {
	start := time.Now()

	filter := scanner.NewFilter(filterOpts)
	scn := scanner.NewScanner(scanner.ScannerOptions{
		Fs:     o.fs,
		Filter: filter,
		Logger: o.logger.WithComponent("scanner"),
	})
	writer := output.NewWriter(output.WriterOptions{
		Fs:   o.fs,
		Path: outputPath,
	})

	if !o.opts.DryRun {
		if err := writer.Reset(); err != nil {
			return nil, err
		}
	}

	files, err := scn.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		Root:       displayRoot,
		Output:     outputPath,
		Discovered: len(files),
	}

	if o.opts.DryRun {
		for _, f := range files {
			o.logger.Info().Str("path", f).Msg("Would bundle")
		}
		summary.Duration = time.Since(start)
		return summary, nil
	}

	if err := writer.Open(); err != nil {
		return nil, err
	}
	defer writer.Close()

	var bar *progressbar.ProgressBar
	if !o.opts.Quiet {
		bar = utils.NewProgressBar(len(files), utils.DescBundling)
	}

	for _, rel := range files {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}

		abs := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(rel, "./")))
		content, err := afero.ReadFile(o.fs, abs)
		if err != nil {
			readErr := domain.NewReadError(rel, err)
			if o.opts.FailFast {
				return nil, readErr
			}
			o.logger.Warn().Err(readErr).Msg("Skipping unreadable file")
			summary.AddSkip(rel, err)
			if bar != nil {
				bar.Add(1)
			}
			continue
		}

		if err := writer.WriteRecord(rel, content); err != nil {
			return nil, err
		}
		summary.AddRecord(rel, int64(len(content)))
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	if compress {
		gzPath, err := writer.Compress()
		if err != nil {
			return nil, err
		}
		o.logger.Info().Str("path", gzPath).Msg("Wrote compressed artifact")
	}

	summary.Duration = time.Since(start)
	o.logSummary(summary)

	return summary, nil
}

func (o *Orchestrator) logSummary(s *domain.Summary) {
	for _, skip := range s.Skipped {
		o.logger.Warn().
			Str("path", skip.Path).
			Str("reason", skip.Reason).
			Msg("Skipped file")
	}

	o.logger.Info().
		Str("root", s.Root).
		Str("output", s.Output).
		Int("discovered", s.Discovered).
		Int("bundled", s.Bundled).
		Int("skipped", len(s.Skipped)).
		Int64("bytes", s.Bytes).
		Dur("duration", s.Duration).
		Msg("Bundle completed")
}
