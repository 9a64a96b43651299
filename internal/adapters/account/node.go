package account

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/internal/core/ports"
)

// NodeID is the unique identifier for the account resolver Graft node.
const NodeID graft.ID = "adapter.account"

func init() {
	graft.Register(graft.Node[ports.AccountResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AccountResolver, error) {
			return NewResolver(), nil
		},
	})
}
