package interrupt

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the interrupt controller Graft node.
const NodeID graft.ID = "adapter.interrupt"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Controller, error) {
			return NewController(), nil
		},
	})
}
