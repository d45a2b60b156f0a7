package pyenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tvoy/internal/adapters/fs"
	"go.trai.ch/tvoy/internal/adapters/logger"
	"go.trai.ch/tvoy/internal/core/ports"
)

const (
	// ProvisionerNodeID is the unique identifier for the Provisioner Graft node.
	ProvisionerNodeID graft.ID = "adapter.pyenv.provisioner"
	// LocatorNodeID is the unique identifier for the interpreter Locator Graft node.
	LocatorNodeID graft.ID = "adapter.pyenv.locator"
)

func init() {
	graft.Register(graft.Node[ports.Provisioner]{
		ID:        ProvisionerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Provisioner, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(hasher, log), nil
		},
	})

	graft.Register(graft.Node[ports.InterpreterLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InterpreterLocator, error) {
			return NewLocator(), nil
		},
	})
}
