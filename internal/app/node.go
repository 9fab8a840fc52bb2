package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcheck/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depcheck/internal/adapters/fs/fsnode" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcheck/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depcheck/internal/core/ports"
	"go.trai.ch/depcheck/internal/engine/checker"
	"go.trai.ch/depcheck/internal/engine/checker/checkernode"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			checkernode.NodeID,
			fsnode.LocatorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			chk, err := graft.Dep[*checker.Checker](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ExecutableLocator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, chk, locator, log), nil
		},
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
