// Package domain contains the core types for populate.
package domain

// Spec is a package specifier taken verbatim from one line of a requirements
// file: a name optionally qualified with a version constraint, e.g.
// "requests==2.31.0". The string is opaque to populate; it is handed to the
// package manager exactly as written. Specs are never validated or
// deduplicated.
type Spec string

// String returns the specifier text.
func (s Spec) String() string {
	return string(s)
}

// Config is the resolved tool configuration after merging defaults, the
// optional populate.yaml file, environment variables and command-line flags.
type Config struct {
	// RequirementsPath is the path to the requirements file.
	RequirementsPath string

	// PackagesDir is the directory downloaded artifacts accumulate in.
	// It is created on demand and never cleared by a run.
	PackagesDir string

	// PipCommand is the package-manager executable used to download packages.
	PipCommand string
}
