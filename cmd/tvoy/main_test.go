package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePython drops a stub interpreter into dir. The stub recreates itself
// inside a venv when asked and succeeds on every other invocation.
func fakePython(t *testing.T, dir string) {
	t.Helper()

	script := `#!/bin/sh
PATH=$PATH:/bin:/usr/bin
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  mkdir -p "$3/bin"
  cp "$0" "$3/bin/python"
fi
exit 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "python3"), []byte(script), 0o700)) //nolint:gosec // test executable
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	originalWd, _ := os.Getwd()
	defer func() {
		os.Args = originalArgs
		_ = os.Chdir(originalWd)
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string) []string
		expectedExit int
	}{
		{
			name: "Usage error without arguments",
			setup: func(_ *testing.T, _ string) []string {
				return []string{"tvoy"}
			},
			expectedExit: 1,
		},
		{
			name: "Missing input file",
			setup: func(_ *testing.T, tmpDir string) []string {
				return []string{"tvoy", filepath.Join(tmpDir, "nonexistent.xlsx")}
			},
			expectedExit: 2,
		},
		{
			name: "No python interpreter",
			setup: func(t *testing.T, tmpDir string) []string {
				input := filepath.Join(tmpDir, "report.xlsx")
				require.NoError(t, os.WriteFile(input, []byte("data"), 0o600))
				t.Setenv("PATH", filepath.Join(tmpDir, "emptybin"))
				return []string{"tvoy", input}
			},
			expectedExit: 3,
		},
		{
			name: "Successful conversion",
			setup: func(t *testing.T, tmpDir string) []string {
				input := filepath.Join(tmpDir, "report.xlsx")
				require.NoError(t, os.WriteFile(input, []byte("data"), 0o600))

				binDir := filepath.Join(tmpDir, "bin")
				require.NoError(t, os.MkdirAll(binDir, 0o750))
				fakePython(t, binDir)
				t.Setenv("PATH", binDir)

				config := fmt.Sprintf("script: %s\nenvDir: %s\n",
					filepath.Join(tmpDir, "broker_to_target.py"),
					filepath.Join(tmpDir, ".venv"))
				require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tvoy.yaml"), []byte(config), 0o600))
				return []string{"tvoy", input}
			},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.setup(t, tmpDir)

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
