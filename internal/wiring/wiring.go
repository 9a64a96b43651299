// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/minish/internal/adapters/account"
	_ "go.trai.ch/minish/internal/adapters/config"
	_ "go.trai.ch/minish/internal/adapters/interrupt"
	_ "go.trai.ch/minish/internal/adapters/logger"
	_ "go.trai.ch/minish/internal/adapters/procfs"
	_ "go.trai.ch/minish/internal/adapters/shell"
	_ "go.trai.ch/minish/internal/adapters/telemetry"
	_ "go.trai.ch/minish/internal/adapters/terminal"
	_ "go.trai.ch/minish/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/minish/internal/app"
	_ "go.trai.ch/minish/internal/engine/repl"
)
