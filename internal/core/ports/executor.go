package ports

import (
	"context"

	"go.trai.ch/tvoy/internal/core/domain"
)

// Executor defines the interface for invoking the external conversion script.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the conversion script described by the request.
	//
	// The env parameter contains additional environment variables in
	// "KEY=VALUE" format, merged over the inherited process environment.
	//
	// It returns an error if the script cannot be started or exits non-zero.
	Execute(ctx context.Context, req *domain.Request, env []string) error
}
