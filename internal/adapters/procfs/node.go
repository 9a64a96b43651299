package procfs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/internal/adapters/account"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
)

// NodeID is the unique identifier for the process lister Graft node.
const NodeID graft.ID = "adapter.procfs"

func init() {
	graft.Register(graft.Node[ports.ProcessLister]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{account.NodeID},
		Run: func(ctx context.Context) (ports.ProcessLister, error) {
			accounts, err := graft.Dep[ports.AccountResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(domain.DefaultProcRoot, accounts), nil
		},
	})
}
