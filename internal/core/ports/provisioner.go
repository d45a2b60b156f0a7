// Package ports defines the core interfaces for the application.
package ports

import "context"

// Provisioner ensures a Python virtual environment has the manifest's
// dependencies installed before the conversion script runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type Provisioner interface {
	// EnsureReady makes envDir usable for the given manifest. base is the
	// interpreter used to create the environment when it does not exist yet.
	//
	// The decision to install is a pure function of the manifest content and
	// the stamp persisted inside envDir: when the stamp equals the manifest
	// digest the call is a no-op, otherwise the environment is (re)created and
	// the full dependency set is installed. The stamp is only overwritten
	// after the entire install completes without error.
	EnsureReady(ctx context.Context, base, manifestPath, envDir string) error
}
