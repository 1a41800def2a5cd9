package pruner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cram/internal/core/ports"
)

const NodeID graft.ID = "engine.pruner"

func init() {
	graft.Register(graft.Node[*Pruner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Pruner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
