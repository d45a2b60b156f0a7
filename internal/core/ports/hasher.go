package ports

// Hasher defines the interface for computing manifest digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ManifestDigest computes the content digest of the manifest at path.
	// A missing manifest yields domain.DigestAbsent, not an error.
	ManifestDigest(path string) (string, error)
}
