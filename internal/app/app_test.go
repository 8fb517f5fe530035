package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/populate/internal/app"
	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/populate/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader      *mocks.MockConfigLoader
	reqs        *mocks.MockRequirementsLoader
	factory     *mocks.MockDownloaderFactory
	downloader  *mocks.MockDownloader
	reporter    *mocks.MockReporter
	logger      *mocks.MockLogger
	app         *app.App
	packagesDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:      mocks.NewMockConfigLoader(ctrl),
		reqs:        mocks.NewMockRequirementsLoader(ctrl),
		factory:     mocks.NewMockDownloaderFactory(ctrl),
		downloader:  mocks.NewMockDownloader(ctrl),
		reporter:    mocks.NewMockReporter(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		packagesDir: filepath.Join(t.TempDir(), "packages"),
	}
	f.app = app.New(f.loader, f.reqs, f.factory, f.reporter, f.logger)
	return f
}

func (f *fixture) config() *domain.Config {
	return &domain.Config{
		RequirementsPath: "populate-requirements.txt",
		PackagesDir:      f.packagesDir,
		PipCommand:       "pip3",
	}
}

func TestApp_Run_DownloadsInFileOrder(t *testing.T) {
	f := newFixture(t)
	specs := []domain.Spec{"requests==2.31.0", "flask", "requests==2.31.0"}

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").Return(specs, nil)
	f.factory.EXPECT().New("pip3").Return(f.downloader)

	gomock.InOrder(
		f.reporter.EXPECT().Start(),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("requests==2.31.0"), f.packagesDir).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("requests==2.31.0")),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("flask"), f.packagesDir).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("flask")),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("requests==2.31.0"), f.packagesDir).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("requests==2.31.0")),
		f.reporter.EXPECT().Complete(),
	)

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)

	// The packages directory was created on the way in.
	info, err := os.Stat(f.packagesDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestApp_Run_ContinuesPastFailures(t *testing.T) {
	f := newFixture(t)
	downloadErr := zerr.New("exit status 1")

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").Return([]domain.Spec{"broken", "flask"}, nil)
	f.factory.EXPECT().New("pip3").Return(f.downloader)

	gomock.InOrder(
		f.reporter.EXPECT().Start(),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("broken"), f.packagesDir).Return(downloadErr),
		f.reporter.EXPECT().Failure(domain.Spec("broken"), downloadErr),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("flask"), f.packagesDir).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("flask")),
		f.reporter.EXPECT().Complete(),
	)

	// Per-item failures never fail the run.
	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_MissingRequirementsFile(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").
		Return(nil, zerr.With(domain.ErrRequirementsNotFound, "path", "populate-requirements.txt"))
	f.reporter.EXPECT().MissingRequirements("populate-requirements.txt")

	// Reported, normal termination: no download, no error.
	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_NoPackages(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").Return(nil, nil)
	f.reporter.EXPECT().NoPackages()

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_OptionsOverrideConfig(t *testing.T) {
	f := newFixture(t)
	dest := filepath.Join(t.TempDir(), "offline")

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("other.txt").Return([]domain.Spec{"requests"}, nil)
	f.factory.EXPECT().New("pip3.12").Return(f.downloader)

	gomock.InOrder(
		f.reporter.EXPECT().Start(),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("requests"), dest).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("requests")),
		f.reporter.EXPECT().Complete(),
	)

	err := f.app.Run(context.Background(), app.RunOptions{
		RequirementsPath: "other.txt",
		PackagesDir:      dest,
		PipCommand:       "pip3.12",
	})
	require.NoError(t, err)
}

func TestApp_Run_ConfigLoadError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, zerr.New("bad yaml"))

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_CanceledContext(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").Return([]domain.Spec{"requests"}, nil)
	f.factory.EXPECT().New("pip3").Return(f.downloader)
	f.reporter.EXPECT().Start()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app.Run(ctx, app.RunOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Run_AdditiveAcrossRuns(t *testing.T) {
	f := newFixture(t)

	// A pre-existing artifact from an earlier run.
	require.NoError(t, os.MkdirAll(f.packagesDir, 0o750))
	artifact := filepath.Join(f.packagesDir, "requests-2.31.0-py3-none-any.whl")
	require.NoError(t, os.WriteFile(artifact, []byte("wheel"), 0o600))

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.reqs.EXPECT().Load("populate-requirements.txt").Return([]domain.Spec{"flask"}, nil)
	f.factory.EXPECT().New("pip3").Return(f.downloader)

	gomock.InOrder(
		f.reporter.EXPECT().Start(),
		f.downloader.EXPECT().Fetch(gomock.Any(), domain.Spec("flask"), f.packagesDir).Return(nil),
		f.reporter.EXPECT().Success(domain.Spec("flask")),
		f.reporter.EXPECT().Complete(),
	)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))

	// The previous artifact is untouched.
	_, err := os.Stat(artifact)
	require.NoError(t, err)
}

func TestApp_Clean_RemovesPackagesDir(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, os.MkdirAll(f.packagesDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(f.packagesDir, "a.whl"), []byte("wheel"), 0o600))

	f.loader.EXPECT().Load(".").Return(f.config(), nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{}))

	_, err := os.Stat(f.packagesDir)
	assert.True(t, os.IsNotExist(err))
}
