package ports

import "go.trai.ch/populate/internal/core/domain"

// ConfigLoader resolves the tool configuration for a working directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges layout defaults, the optional populate.yaml in cwd and
	// POPULATE_* environment variables into a Config.
	Load(cwd string) (*domain.Config, error)
}
