package pyenv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// ReadStamp returns the digest recorded at the last successful install, or the
// empty string when no stamp exists. The stamp is never consulted for anything
// except comparison against the current manifest digest.
func ReadStamp(path string) (string, error) {
	//nolint:gosec // Path is constructed from the trusted environment directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read install stamp"), "path", path)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteStamp overwrites the stamp with the given digest. Callers must only do
// this after the entire install completed without error.
func WriteStamp(path, digest string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create environment directory")
	}
	//nolint:gosec // Path is constructed from the trusted environment directory
	if err := os.WriteFile(path, []byte(digest+"\n"), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write install stamp"), "path", path)
	}
	return nil
}
