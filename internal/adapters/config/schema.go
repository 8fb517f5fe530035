package config

// configFile is the YAML schema of populate.yaml. All fields are optional;
// empty fields keep the value resolved so far.
type configFile struct {
	// Requirements is the path to the requirements file.
	Requirements string `yaml:"requirements"`
	// Dest is the directory downloads accumulate in.
	Dest string `yaml:"dest"`
	// Pip is the package-manager executable.
	Pip string `yaml:"pip"`
}
