// Package config provides the configuration loader for populate.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file configuration.
const (
	EnvRequirements = "POPULATE_REQUIREMENTS"
	EnvDest         = "POPULATE_DEST"
	EnvPip          = "POPULATE_PIP"
)

// Loader implements ports.ConfigLoader. Resolution order, later wins:
// layout defaults, populate.yaml in the working directory, POPULATE_*
// environment variables. The file is optional; the environment is always
// consulted.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader backed by the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fs: NewOSFS()}
}

// NewLoaderWithFS creates a Loader with a custom filesystem. Used for testing.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load resolves the configuration for the given working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, domain.ConfigFileName)
	if _, err := l.fs.Stat(path); err == nil {
		if err := l.applyFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

func (l *Loader) applyFile(path string, cfg *domain.Config) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zerr.With(domain.ErrConfigReadFailed, "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Requirements != "" {
		cfg.RequirementsPath = file.Requirements
	}
	if file.Dest != "" {
		cfg.PackagesDir = file.Dest
	}
	if file.Pip != "" {
		cfg.PipCommand = file.Pip
	}

	return nil
}

func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvRequirements); v != "" {
		cfg.RequirementsPath = v
	}
	if v := os.Getenv(EnvDest); v != "" {
		cfg.PackagesDir = v
	}
	if v := os.Getenv(EnvPip); v != "" {
		cfg.PipCommand = v
	}
}
