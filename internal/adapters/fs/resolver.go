package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface using path/filepath.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInput resolves a possibly-relative path to an absolute canonical
// path, following symlinks. The file must exist and be a regular file.
func (r *Resolver) ResolveInput(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(domain.ErrInputNotFound, "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to canonicalize path"), "path", path)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", zerr.With(domain.ErrInputNotFound, "path", path)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrInputNotFound, "input is a directory"), "path", path)
	}

	return resolved, nil
}

// OutputPath computes the output workbook path as a sibling of the resolved
// input. The result depends only on the input's directory, never on the
// current working directory.
func (r *Resolver) OutputPath(inputPath, outputName string) string {
	return filepath.Join(filepath.Dir(inputPath), outputName)
}
