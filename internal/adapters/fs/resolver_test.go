package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tvoy/internal/adapters/fs"
	"go.trai.ch/tvoy/internal/core/domain"
)

func TestResolver_ResolveInput_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "report.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("xlsx"), 0o600))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	resolver := fs.NewResolver()
	resolved, err := resolver.ResolveInput("report.xlsx")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(resolved))
	assert.Equal(t, "report.xlsx", filepath.Base(resolved))
}

func TestResolver_ResolveInput_Missing(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInput(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputNotFound))
}

func TestResolver_ResolveInput_Directory(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInput(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputNotFound))
}

func TestResolver_OutputPath_SiblingOfInput(t *testing.T) {
	resolver := fs.NewResolver()

	out := resolver.OutputPath("/data/reports/report.xlsx", "tvoy_result.xlsx")
	assert.Equal(t, "/data/reports/tvoy_result.xlsx", out)
}

func TestResolver_OutputPath_IndependentOfWorkingDir(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "report.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("xlsx"), 0o600))

	resolver := fs.NewResolver()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	// Resolve from two different working directories; the output must not move.
	require.NoError(t, os.Chdir(tmpDir))
	resolvedFromInside, err := resolver.ResolveInput("report.xlsx")
	require.NoError(t, err)

	require.NoError(t, os.Chdir(os.TempDir()))
	resolvedFromOutside, err := resolver.ResolveInput(input)
	require.NoError(t, err)

	first := resolver.OutputPath(resolvedFromInside, "tvoy_result.xlsx")
	second := resolver.OutputPath(resolvedFromOutside, "tvoy_result.xlsx")
	assert.Equal(t, first, second)
	assert.Equal(t, "tvoy_result.xlsx", filepath.Base(first))
}
