package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tvoy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/adapters/pyenv"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/tvoy/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application with the adapters main needs
// direct access to.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			pyenv.LocatorNodeID,
			pyenv.ProvisionerNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}
	locator, err := graft.Dep[ports.InterpreterLocator](ctx)
	if err != nil {
		return nil, err
	}
	provisioner, err := graft.Dep[ports.Provisioner](ctx)
	if err != nil {
		return nil, err
	}
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, locator, provisioner, executor, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
