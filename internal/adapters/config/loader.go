// Package config provides the configuration loader for tvoy.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "tvoy.yaml"

const (
	defaultScript     = "broker_to_target.py"
	defaultManifest   = "requirements.txt"
	defaultEnvDir     = ".venv"
	defaultOutputName = "tvoy_result.xlsx"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default config filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory. A missing
// config file is not an error; it yields pure defaults. Script, manifest and
// environment paths default to siblings of the tvoy executable, so the tool
// behaves identically from any working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	var file File

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	return l.settings(cwd, &file)
}

// settings applies defaulting and resolves every path to an absolute one.
func (l *FileConfigLoader) settings(cwd string, file *File) (*domain.Settings, error) {
	anchor := executableDir(cwd)

	script := file.Script
	if script == "" {
		script = filepath.Join(anchor, defaultScript)
	}
	script = absAgainst(cwd, script)

	manifest := file.Manifest
	if manifest == "" {
		manifest = filepath.Join(filepath.Dir(script), defaultManifest)
	}
	manifest = absAgainst(cwd, manifest)

	envDir := file.EnvDir
	if envDir == "" {
		envDir = filepath.Join(filepath.Dir(script), defaultEnvDir)
	}
	envDir = absAgainst(cwd, envDir)

	outputName := file.OutputName
	if outputName == "" {
		outputName = defaultOutputName
	}

	// The converter is always invoked with --debug --include-cash unless the
	// config explicitly turns one of them off.
	includeCash := true
	if file.IncludeCash != nil {
		includeCash = *file.IncludeCash
	}
	debug := true
	if file.Debug != nil {
		debug = *file.Debug
	}

	return &domain.Settings{
		ScriptPath:   script,
		ManifestPath: manifest,
		EnvDir:       envDir,
		Python:       file.Python,
		OutputName:   outputName,
		IncludeCash:  includeCash,
		Debug:        debug,
		ExtraArgs:    file.ExtraArgs,
	}, nil
}

// executableDir anchors path defaults next to the running binary, falling
// back to the working directory (tests, `go run`).
func executableDir(cwd string) string {
	exe, err := os.Executable()
	if err != nil {
		return cwd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func absAgainst(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}
