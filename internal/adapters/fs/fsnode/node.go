// Package fsnode registers the filesystem adapters as Graft nodes. It is kept
// apart from package fs so that importing the adapters alone registers nothing.
package fsnode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcheck/internal/adapters/fs"
	"go.trai.ch/depcheck/internal/core/ports"
)

const (
	ProberNodeID  graft.ID = "adapter.fs.prober"
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileProber, error) {
			return fs.NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.ExecutableLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ExecutableLocator, error) {
			return fs.NewLocator(), nil
		},
	})
}
