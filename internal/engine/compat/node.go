package compat

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.aggregator"

func init() {
	graft.Register(graft.Node[*Aggregator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Aggregator, error) {
			return New(), nil
		},
	})
}
