package domain

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	// OutputText renders a human-readable report.
	OutputText OutputFormat = "text"
	// OutputJSON renders the report as a JSON document.
	OutputJSON OutputFormat = "json"
)

// Settings holds the resolved options of a check run.
type Settings struct {
	// BaseDir is where dependencies are expected. Empty means the executable's directory.
	BaseDir string
	// LocalePack is the locale pack reference, absolute or relative to BaseDir.
	LocalePack string
	// Parallelism bounds concurrent probes. Values below 2 probe sequentially.
	Parallelism int
	// Output selects the report format.
	Output OutputFormat
}

// DefaultSettings returns the settings used when neither a config file nor flags say otherwise.
func DefaultSettings() Settings {
	return Settings{
		LocalePack:  DefaultLocalePack,
		Parallelism: 1,
		Output:      OutputText,
	}
}
