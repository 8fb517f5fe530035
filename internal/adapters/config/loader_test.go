package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/populate/internal/adapters/config"
	"go.trai.ch/populate/internal/core/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvRequirements, "")
	t.Setenv(config.EnvDest, "")
	t.Setenv(config.EnvPip, "")
}

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)
	cwd := t.TempDir()

	cfg, err := config.NewLoader().Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRequirementsFile, cfg.RequirementsPath)
	assert.Equal(t, domain.DefaultPackagesDir, cfg.PackagesDir)
	assert.Equal(t, domain.DefaultPipCommand, cfg.PipCommand)
}

func TestLoader_Load_File(t *testing.T) {
	clearEnv(t)
	cwd := t.TempDir()
	content := "requirements: reqs.txt\ndest: /srv/packages\npip: pip\n"
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.ConfigFileName), []byte(content), 0o600))

	cfg, err := config.NewLoader().Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, "reqs.txt", cfg.RequirementsPath)
	assert.Equal(t, "/srv/packages", cfg.PackagesDir)
	assert.Equal(t, "pip", cfg.PipCommand)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.ConfigFileName), []byte("dest: downloads\n"), 0o600))

	cfg, err := config.NewLoader().Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRequirementsFile, cfg.RequirementsPath)
	assert.Equal(t, "downloads", cfg.PackagesDir)
	assert.Equal(t, domain.DefaultPipCommand, cfg.PipCommand)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.ConfigFileName), []byte("pip: pip\n"), 0o600))

	t.Setenv(config.EnvPip, "pip3.12")
	t.Setenv(config.EnvRequirements, "env-reqs.txt")

	cfg, err := config.NewLoader().Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, "pip3.12", cfg.PipCommand)
	assert.Equal(t, "env-reqs.txt", cfg.RequirementsPath)
	assert.Equal(t, domain.DefaultPackagesDir, cfg.PackagesDir)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	clearEnv(t)
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.ConfigFileName), []byte("dest: [unclosed\n"), 0o600))

	_, err := config.NewLoader().Load(cwd)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
