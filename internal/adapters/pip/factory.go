package pip

import "go.trai.ch/populate/internal/core/ports"

// Factory implements ports.DownloaderFactory.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns a Downloader bound to the given pip executable.
func (f *Factory) New(command string) ports.Downloader {
	return NewDownloader(command)
}
