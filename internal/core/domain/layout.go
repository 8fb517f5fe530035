package domain

import "io/fs"

// Default file layout. The requirements file and packages directory are fixed
// by convention and only moved via configuration.
const (
	// ConfigFileName is the optional configuration file looked up in the
	// working directory.
	ConfigFileName = "populate.yaml"

	// DefaultRequirementsFile is the requirements file read when no other
	// path is configured.
	DefaultRequirementsFile = "populate-requirements.txt"

	// DefaultPackagesDir is the directory downloads land in by default.
	DefaultPackagesDir = "packages"

	// DefaultPipCommand is the package-manager executable invoked per
	// specifier.
	DefaultPipCommand = "pip3"
)

// Filesystem permissions for artifacts populate creates.
const (
	// PackagesDirPerm is the mode for the packages directory.
	PackagesDirPerm fs.FileMode = 0o750
)

// DefaultConfig returns a Config populated with the layout defaults.
func DefaultConfig() *Config {
	return &Config{
		RequirementsPath: DefaultRequirementsFile,
		PackagesDir:      DefaultPackagesDir,
		PipCommand:       DefaultPipCommand,
	}
}
