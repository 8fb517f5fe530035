// Package requirements parses requirements files into package specifiers.
package requirements

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"go.trai.ch/populate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.RequirementsLoader for plain-text requirements
// files: one specifier per line, '#' comment lines and blank lines ignored.
// There is no other syntax — no inline comments, no quoting.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and returns its specifiers in file order.
// Lines are trimmed of surrounding whitespace; lines empty after trimming or
// starting with '#' are dropped. Duplicates are kept: the caller passes each
// line to the package manager exactly as many times as it appears.
func (l *Loader) Load(path string) ([]domain.Spec, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the user's own configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrRequirementsNotFound, "path", path)
		}
		return nil, errors.Join(domain.ErrRequirementsReadFailed, err)
	}
	defer func() { _ = f.Close() }()

	var specs []domain.Spec

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, domain.Spec(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(domain.ErrRequirementsReadFailed, err)
	}

	return specs, nil
}
