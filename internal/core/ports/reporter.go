package ports

import "go.trai.ch/populate/internal/core/domain"

// Reporter is the user-facing progress surface of a run. It decouples the
// orchestration loop from presentation so tests can assert on the exact
// sequence of events.
//
// The message shapes it produces are part of the tool's observable contract:
// one line per specifier, one line for the missing-file and empty-input
// conditions, and an unconditional completion line.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Start announces that downloads are about to begin.
	Start()

	// Success reports one successfully downloaded specifier.
	Success(spec domain.Spec)

	// Failure reports one failed specifier together with the error detail.
	Failure(spec domain.Spec, err error)

	// MissingRequirements reports that the requirements file was not found
	// at the expected path.
	MissingRequirements(path string)

	// NoPackages reports that the requirements file yielded no specifiers.
	NoPackages()

	// Complete prints the final completion line. It is emitted regardless
	// of how many individual downloads failed.
	Complete()
}
