// Package main is the entry point for the minish shell.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/minish/cmd/minish/commands"
	"go.trai.ch/minish/internal/app"
	_ "go.trai.ch/minish/internal/wiring"
)

// exitTerminated is the conventional status of a process stopped by SIGTERM.
const exitTerminated = 128 + int(syscall.SIGTERM)

// ComponentProvider builds the application components.
type ComponentProvider func(ctx context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// 0. Context with signal handling. SIGINT belongs to the shell loop.
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitTerminated
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
