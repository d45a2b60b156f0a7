package ports

// InterpreterLocator discovers the base Python interpreter used to create
// virtual environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type InterpreterLocator interface {
	// Find returns the absolute path of the base interpreter. A non-empty
	// preferred name restricts the search to that name; otherwise python3 is
	// tried before python. It returns domain.ErrInterpreterNotFound when
	// nothing matches on PATH.
	Find(preferred string) (string, error)
}
