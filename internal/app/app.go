// Package app implements the application layer for minish.
package app

import (
	"context"
	"os"

	"go.trai.ch/minish/internal/adapters/telemetry"
	"go.trai.ch/minish/internal/adapters/terminal"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/minish/internal/engine/repl"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SignalRegistrar installs and removes the interrupt subscription.
type SignalRegistrar interface {
	Register(ctx context.Context) error
	Stop()
}

type jsonSwitch interface{ SetJSON(enable bool) }

type ptySwitch interface{ SetPTY(enable bool) }

type rootSwitch interface{ SetRoot(root string) }

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	watcher      ports.Watcher
	logger       ports.Logger
	executor     ports.Executor
	processes    ports.ProcessLister
	reader       ports.LineReader
	signals      SignalRegistrar
	driver       *repl.Driver
	stdinIsTTY   func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	watcher ports.Watcher,
	log ports.Logger,
	executor ports.Executor,
	processes ports.ProcessLister,
	reader ports.LineReader,
	signals SignalRegistrar,
	driver *repl.Driver,
) *App {
	return &App{
		configLoader: loader,
		watcher:      watcher,
		logger:       log,
		executor:     executor,
		processes:    processes,
		reader:       reader,
		signals:      signals,
		driver:       driver,
		stdinIsTTY:   func() bool { return terminal.IsTerminal(os.Stdin) },
	}
}

// WithStdinTerminal overrides the check for whether stdin is a terminal.
// This is primarily used for testing.
func (a *App) WithStdinTerminal(isTTY func() bool) *App {
	a.stdinIsTTY = isTTY
	return a
}

// RunOptions holds command line overrides. A set flag wins over the config file.
type RunOptions struct {
	ConfigPath string
	LogJSON    bool
	Trace      bool
	PTY        bool
}

// Run loads the configuration and runs the interactive loop until exit or end of input.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration; fall back to the defaults on failure
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to load configuration, using defaults"))
		cfg = domain.DefaultConfig()
	}
	cfg.LogJSON = cfg.LogJSON || opts.LogJSON
	cfg.Trace = cfg.Trace || opts.Trace
	cfg.PTY = cfg.PTY || opts.PTY

	// 2. Apply it to the components
	a.configure(cfg)

	// 3. Initialize Telemetry
	shutdown := telemetry.Setup(a.logger, cfg.Trace)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	// 4. Subscribe to interrupts; failure is fatal
	if err := a.signals.Register(ctx); err != nil {
		return err
	}
	defer a.signals.Stop()
	defer func() {
		_ = a.reader.Close()
	}()

	// 5. Run the loop and the config watcher concurrently
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Path != "" {
		if err := a.watcher.Start(ctx, cfg.Path); err != nil {
			a.logger.Warn("config changes will not be picked up: " + err.Error())
		} else {
			g.Go(func() error {
				a.reloadPrompt()
				return nil
			})
		}
	}

	g.Go(func() error {
		defer func() {
			_ = a.watcher.Stop()
		}()
		return a.driver.Run(ctx)
	})

	return g.Wait()
}

func (a *App) configure(cfg domain.Config) {
	if s, ok := a.logger.(jsonSwitch); ok && cfg.LogJSON {
		s.SetJSON(true)
	}

	if s, ok := a.processes.(rootSwitch); ok {
		s.SetRoot(cfg.ProcRoot)
	}

	if cfg.PTY {
		if a.stdinIsTTY() {
			a.logger.Warn("pty mode ignored: stdin is a terminal")
		} else if s, ok := a.executor.(ptySwitch); ok {
			s.SetPTY(true)
		}
	}

	a.driver.SetPromptStyle(cfg.Prompt)
}

// reloadPrompt applies the prompt style of every config change until the watcher stops.
// Other settings take effect on the next start.
func (a *App) reloadPrompt() {
	for path := range a.watcher.Changes() {
		cfg, err := a.configLoader.Load(path)
		if err != nil {
			a.logger.Warn("config reload failed: " + err.Error())
			continue
		}
		a.driver.SetPromptStyle(cfg.Prompt)
	}
}
