package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tvoy/internal/adapters/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	loader := config.NewLoader()
	settings, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "broker_to_target.py", filepath.Base(settings.ScriptPath))
	assert.True(t, filepath.IsAbs(settings.ScriptPath))

	// Manifest and environment default to siblings of the script.
	scriptDir := filepath.Dir(settings.ScriptPath)
	assert.Equal(t, filepath.Join(scriptDir, "requirements.txt"), settings.ManifestPath)
	assert.Equal(t, filepath.Join(scriptDir, ".venv"), settings.EnvDir)

	assert.Equal(t, "tvoy_result.xlsx", settings.OutputName)
	assert.True(t, settings.IncludeCash)
	assert.True(t, settings.Debug)
	assert.Empty(t, settings.Python)
	assert.Empty(t, settings.ExtraArgs)
}

func TestLoad_ExplicitValues(t *testing.T) {
	content := `
script: tools/broker_to_target.py
manifest: tools/requirements.txt
envDir: /var/lib/tvoy/env
python: python3.12
outputName: result.xlsx
includeCash: false
debug: false
extraArgs: ["--sort"]
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tvoy.yaml"), []byte(content), 0o600))

	loader := config.NewLoader()
	settings, err := loader.Load(tmpDir)
	require.NoError(t, err)

	// Relative paths are resolved against the working directory.
	assert.Equal(t, filepath.Join(tmpDir, "tools", "broker_to_target.py"), settings.ScriptPath)
	assert.Equal(t, filepath.Join(tmpDir, "tools", "requirements.txt"), settings.ManifestPath)
	assert.Equal(t, "/var/lib/tvoy/env", settings.EnvDir)
	assert.Equal(t, "python3.12", settings.Python)
	assert.Equal(t, "result.xlsx", settings.OutputName)
	assert.False(t, settings.IncludeCash)
	assert.False(t, settings.Debug)
	assert.Equal(t, []string{"--sort"}, settings.ExtraArgs)
}

func TestLoad_PartialConfigKeepsFlagDefaults(t *testing.T) {
	content := `
script: /opt/tvoy/broker_to_target.py
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tvoy.yaml"), []byte(content), 0o600))

	loader := config.NewLoader()
	settings, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/tvoy/broker_to_target.py", settings.ScriptPath)
	assert.Equal(t, "/opt/tvoy/requirements.txt", settings.ManifestPath)
	assert.Equal(t, "/opt/tvoy/.venv", settings.EnvDir)
	assert.True(t, settings.IncludeCash, "unset includeCash defaults to on")
	assert.True(t, settings.Debug, "unset debug defaults to on")
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tvoy.yaml"), []byte("script: [broken"), 0o600))

	loader := config.NewLoader()
	_, err := loader.Load(tmpDir)
	require.Error(t, err)
}
