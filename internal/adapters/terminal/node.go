package terminal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/internal/adapters/interrupt"
	"go.trai.ch/minish/internal/core/ports"
)

// NodeID is the unique identifier for the line reader Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.LineReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{interrupt.NodeID},
		Run: func(ctx context.Context) (ports.LineReader, error) {
			controller, err := graft.Dep[*interrupt.Controller](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(os.Stdin, controller), nil
		},
	})
}
