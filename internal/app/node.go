package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/interrupt" //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/procfs"    //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/terminal"  //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/minish/internal/engine/repl"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			watcher.NodeID,
			logger.NodeID,
			shell.NodeID,
			procfs.NodeID,
			terminal.NodeID,
			interrupt.NodeID,
			repl.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
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

	reader, err := graft.Dep[ports.LineReader](ctx)
	if err != nil {
		return nil, err
	}

	controller, err := graft.Dep[*interrupt.Controller](ctx)
	if err != nil {
		return nil, err
	}

	driver, err := graft.Dep[*repl.Driver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, w, log, executor, processes, reader, controller, driver), nil
}
