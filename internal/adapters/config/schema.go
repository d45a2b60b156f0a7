package config

// File represents the structure of the optional tvoy.yaml configuration file.
type File struct {
	Script      string   `yaml:"script"`
	Manifest    string   `yaml:"manifest"`
	EnvDir      string   `yaml:"envDir"`
	Python      string   `yaml:"python"`
	OutputName  string   `yaml:"outputName"`
	IncludeCash *bool    `yaml:"includeCash"`
	Debug       *bool    `yaml:"debug"`
	ExtraArgs   []string `yaml:"extraArgs"`
}
