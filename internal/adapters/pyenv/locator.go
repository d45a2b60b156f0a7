package pyenv

import (
	"os/exec"

	"go.trai.ch/tvoy/internal/core/domain"
	"go.trai.ch/tvoy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InterpreterLocator = (*Locator)(nil)

// Locator finds the base Python interpreter on PATH.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Find returns the absolute path of the base interpreter, preferring python3.
func (l *Locator) Find(preferred string) (string, error) {
	candidates := []string{"python3", "python"}
	if preferred != "" {
		candidates = []string{preferred}
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", zerr.With(domain.ErrInterpreterNotFound, "candidates", candidates)
}
