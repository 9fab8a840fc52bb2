package config

// Depcheckfile represents the structure of the depcheck.yaml configuration file.
type Depcheckfile struct {
	Version     string `yaml:"version"`
	BaseDir     string `yaml:"baseDir"`
	LocalePack  string `yaml:"localePack"`
	Parallelism int    `yaml:"parallelism"`
	Output      string `yaml:"output"`
}
