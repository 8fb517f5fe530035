package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/populate/internal/adapters/config"       //nolint:depguard // Wired in app layer
	"go.trai.ch/populate/internal/adapters/console"      //nolint:depguard // Wired in app layer
	"go.trai.ch/populate/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/populate/internal/adapters/pip"          //nolint:depguard // Wired in app layer
	"go.trai.ch/populate/internal/adapters/requirements" //nolint:depguard // Wired in app layer
	"go.trai.ch/populate/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the entry point needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			requirements.NodeID,
			pip.NodeID,
			console.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reqs, err := graft.Dep[ports.RequirementsLoader](ctx)
	if err != nil {
		return nil, err
	}

	downloaders, err := graft.Dep[ports.DownloaderFactory](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reqs, downloaders, reporter, log), nil
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

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
