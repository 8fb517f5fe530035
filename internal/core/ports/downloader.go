// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/populate/internal/core/domain"
)

// Downloader fetches a single package artifact into a destination directory.
//
//go:generate mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// Fetch downloads exactly the named specifier into dest, without
	// following its dependency graph. A non-zero exit from the underlying
	// tool is returned as an error carrying the exit code and the tool's
	// captured output.
	Fetch(ctx context.Context, spec domain.Spec, dest string) error
}

// DownloaderFactory builds a Downloader for the configured package-manager
// command. The command is only known once configuration is resolved, so the
// application asks the factory for a Downloader at run time.
type DownloaderFactory interface {
	// New returns a Downloader that invokes the given executable. An empty
	// command selects the default.
	New(command string) Downloader
}
