package pyenv_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tvoy/internal/adapters/pyenv"
	"go.trai.ch/tvoy/internal/core/domain"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o700)) //nolint:gosec // test executable
	return path
}

func TestLocator_Find_PrefersPython3(t *testing.T) {
	tmpDir := t.TempDir()
	python3 := writeExecutable(t, tmpDir, "python3")
	writeExecutable(t, tmpDir, "python")
	t.Setenv("PATH", tmpDir)

	locator := pyenv.NewLocator()
	found, err := locator.Find("")
	require.NoError(t, err)
	assert.Equal(t, python3, found)
}

func TestLocator_Find_FallsBackToPython(t *testing.T) {
	tmpDir := t.TempDir()
	python := writeExecutable(t, tmpDir, "python")
	t.Setenv("PATH", tmpDir)

	locator := pyenv.NewLocator()
	found, err := locator.Find("")
	require.NoError(t, err)
	assert.Equal(t, python, found)
}

func TestLocator_Find_PreferredOnly(t *testing.T) {
	tmpDir := t.TempDir()
	writeExecutable(t, tmpDir, "python3")
	pypy := writeExecutable(t, tmpDir, "pypy3")
	t.Setenv("PATH", tmpDir)

	locator := pyenv.NewLocator()

	found, err := locator.Find("pypy3")
	require.NoError(t, err)
	assert.Equal(t, pypy, found)

	// A preferred interpreter that is missing is an error, python3 on PATH
	// notwithstanding.
	_, err = locator.Find("python4")
	assert.True(t, errors.Is(err, domain.ErrInterpreterNotFound))
}

func TestLocator_Find_NothingOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	locator := pyenv.NewLocator()
	_, err := locator.Find("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInterpreterNotFound))
}
