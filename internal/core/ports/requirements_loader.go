package ports

import "go.trai.ch/populate/internal/core/domain"

// RequirementsLoader parses a requirements file into an ordered list of
// package specifiers.
//
//go:generate mockgen -source=requirements_loader.go -destination=mocks/mock_requirements_loader.go -package=mocks
type RequirementsLoader interface {
	// Load reads the file at path line by line, trims surrounding
	// whitespace and drops blank lines and '#' comment lines. The result
	// preserves file order and duplicates. A missing file is reported as
	// domain.ErrRequirementsNotFound.
	Load(path string) ([]domain.Spec, error)
}
