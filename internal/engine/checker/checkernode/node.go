// Package checkernode registers the dependency checker as a Graft node.
package checkernode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcheck/internal/adapters/fs/fsnode"
	"go.trai.ch/depcheck/internal/core/domain"
	"go.trai.ch/depcheck/internal/core/ports"
	"go.trai.ch/depcheck/internal/engine/checker"
)

const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[*checker.Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fsnode.ProberNodeID,
			fsnode.LocatorNodeID,
		},
		Run: func(ctx context.Context) (*checker.Checker, error) {
			prober, err := graft.Dep[ports.FileProber](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ExecutableLocator](ctx)
			if err != nil {
				return nil, err
			}

			return checker.NewChecker(domain.DefaultManifest(), prober, checker.WithLocator(locator)), nil
		},
	})
}
