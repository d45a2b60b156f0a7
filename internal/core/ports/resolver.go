package ports

// PathResolver defines the interface for resolving user-supplied paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// ResolveInput resolves a possibly-relative input path to an absolute
	// canonical path. It returns domain.ErrInputNotFound when the file does
	// not exist.
	ResolveInput(path string) (string, error)

	// OutputPath computes the output workbook path: a file named outputName
	// in the directory of the resolved input, independent of the working
	// directory.
	OutputPath(inputPath, outputName string) string
}
