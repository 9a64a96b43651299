package repl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/internal/adapters/account"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/interrupt" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/procfs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/adapters/terminal"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/minish/internal/core/ports"
)

// NodeID is the unique identifier for the REPL driver Graft node.
const NodeID graft.ID = "engine.repl"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			terminal.NodeID,
			interrupt.NodeID,
			shell.NodeID,
			procfs.NodeID,
			account.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			reader, err := graft.Dep[ports.LineReader](ctx)
			if err != nil {
				return nil, err
			}

			controller, err := graft.Dep[*interrupt.Controller](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			processes, err := graft.Dep[ports.ProcessLister](ctx)
			if err != nil {
				return nil, err
			}

			accounts, err := graft.Dep[ports.AccountResolver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDriver(
				reader,
				controller,
				executor,
				processes,
				accounts,
				tracer,
				log,
			), nil
		},
	})
}
