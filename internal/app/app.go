// Package app implements the application layer for populate.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/populate/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	requirements ports.RequirementsLoader
	downloaders  ports.DownloaderFactory
	reporter     ports.Reporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	requirements ports.RequirementsLoader,
	downloaders ports.DownloaderFactory,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		requirements: requirements,
		downloaders:  downloaders,
		reporter:     reporter,
		logger:       log,
	}
}

// RunOptions configuration for the Run method. Non-empty fields override the
// resolved configuration.
type RunOptions struct {
	RequirementsPath string
	PackagesDir      string
	PipCommand       string
}

// Run downloads every specifier listed in the requirements file into the
// packages directory, one blocking subprocess at a time, in file order.
//
// A missing requirements file and an empty specifier list are reported,
// normal terminations. A failed download is reported and the loop continues;
// per-item failures never surface as a run error, so the process exit status
// stays 0 as long as the batch itself could run.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)

	if err := os.MkdirAll(cfg.PackagesDir, domain.PackagesDirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrDestCreateFailed, err), "path", cfg.PackagesDir)
	}

	specs, err := a.requirements.Load(cfg.RequirementsPath)
	if err != nil {
		if errors.Is(err, domain.ErrRequirementsNotFound) {
			a.reporter.MissingRequirements(cfg.RequirementsPath)
			return nil
		}
		return err
	}

	if len(specs) == 0 {
		a.reporter.NoPackages()
		return nil
	}

	downloader := a.downloaders.New(cfg.PipCommand)

	a.reporter.Start()
	for _, spec := range specs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := downloader.Fetch(ctx, spec, cfg.PackagesDir); err != nil {
			a.reporter.Failure(spec, err)
			continue
		}
		a.reporter.Success(spec)
	}
	a.reporter.Complete()

	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	PackagesDir string
}

// Clean removes the packages directory and everything downloaded into it.
// Runs themselves are additive; this is the only operation that deletes
// artifacts.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.PackagesDir != "" {
		cfg.PackagesDir = opts.PackagesDir
	}

	a.logger.Info(fmt.Sprintf("removing %s...", cfg.PackagesDir))
	if err := os.RemoveAll(cfg.PackagesDir); err != nil {
		return zerr.Wrap(err, "failed to remove packages directory")
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.PackagesDir))

	return nil
}

func applyOverrides(cfg *domain.Config, opts RunOptions) {
	if opts.RequirementsPath != "" {
		cfg.RequirementsPath = opts.RequirementsPath
	}
	if opts.PackagesDir != "" {
		cfg.PackagesDir = opts.PackagesDir
	}
	if opts.PipCommand != "" {
		cfg.PipCommand = opts.PipCommand
	}
}
