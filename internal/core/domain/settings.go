package domain

// Settings holds the launcher configuration after defaulting. All paths are
// absolute once the loader has resolved them.
type Settings struct {
	// ScriptPath is the location of the external conversion script.
	ScriptPath string
	// ManifestPath is the dependency manifest consumed by the provisioner.
	ManifestPath string
	// EnvDir is the virtual environment directory.
	EnvDir string
	// Python names the base interpreter used to create the environment.
	// Empty means "discover on PATH".
	Python string
	// OutputName is the filename of the produced workbook, placed next to the input.
	OutputName string
	// IncludeCash and Debug are the converter flag defaults.
	IncludeCash bool
	Debug       bool
	// ExtraArgs are appended to every invocation, before CLI extras.
	ExtraArgs []string
}
