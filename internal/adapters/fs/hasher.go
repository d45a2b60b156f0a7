// Package fs provides filesystem adapters: manifest digesting and path resolution.
package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests for dependency manifests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ManifestDigest computes the XXHash of the manifest's content, formatted as a
// 16-digit hex string. An absent manifest yields domain.DigestAbsent; any
// other read failure is an error.
func (h *Hasher) ManifestDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.DigestAbsent, nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash manifest content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
