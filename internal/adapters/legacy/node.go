package legacy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cram/internal/adapters/logger"
	"go.trai.ch/cram/internal/core/ports"
)

const NodeID graft.ID = "adapter.registry_loader"

func init() {
	graft.Register(graft.Node[ports.RegistryLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RegistryLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
