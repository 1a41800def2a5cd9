package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/legacy"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/cram/internal/engine/compat"
	"go.trai.ch/cram/internal/engine/pruner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the adapters the CLI shell needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			legacy.NodeID,
			pruner.NodeID,
			compat.NodeID,
			manifest.NodeID,
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
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registryLoader, err := graft.Dep[ports.RegistryLoader](ctx)
	if err != nil {
		return nil, err
	}

	prn, err := graft.Dep[*pruner.Pruner](ctx)
	if err != nil {
		return nil, err
	}

	aggregator, err := graft.Dep[*compat.Aggregator](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
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

	return New(configLoader, registryLoader, prn, aggregator, writer, log, tel), nil
}
