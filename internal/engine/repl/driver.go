// Package repl implements the read, classify, dispatch loop of minish.
package repl

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
)

// Outcome tells the loop whether to prompt again.
type Outcome int

const (
	// Continue returns to the prompt.
	Continue Outcome = iota
	// Terminate ends the loop successfully.
	Terminate
)

// Driver runs the interactive loop.
type Driver struct {
	reader    ports.LineReader
	interrupt ports.Interrupter
	executor  ports.Executor
	processes ports.ProcessLister
	accounts  ports.AccountResolver
	tracer    ports.Tracer
	logger    ports.Logger

	stdio  ports.Stdio
	prompt *Prompt
}

// NewDriver creates a Driver on the process's standard streams with the default prompt style.
func NewDriver(
	reader ports.LineReader,
	interrupter ports.Interrupter,
	executor ports.Executor,
	processes ports.ProcessLister,
	accounts ports.AccountResolver,
	tracer ports.Tracer,
	logger ports.Logger,
) *Driver {
	d := &Driver{
		reader:    reader,
		interrupt: interrupter,
		executor:  executor,
		processes: processes,
		accounts:  accounts,
		tracer:    tracer,
		logger:    logger,
	}
	return d.WithStdio(ports.Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
}

// WithStdio replaces the streams used for the prompt, built-in output and children.
func (d *Driver) WithStdio(stdio ports.Stdio) *Driver {
	d.stdio = stdio
	d.prompt = NewPrompt(stdio.Stdout, domain.DefaultConfig().Prompt)
	return d
}

// SetPromptStyle changes the prompt style, also while the loop is running.
func (d *Driver) SetPromptStyle(style domain.PromptStyle) {
	d.prompt.SetStyle(style)
}

// Run loops until exit, end of input or cancellation of ctx.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if d.interrupt.Pending() {
			d.newline()
			d.interrupt.Clear()
		}

		if err := d.prompt.Write(); err != nil {
			d.logger.Error(err)
		}

		line, err := d.reader.ReadLine(ctx)

		// Whatever was read while an interrupt arrived is discarded.
		if d.interrupt.Pending() {
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, domain.ErrReadInterrupted):
			continue
		case errors.Is(err, io.EOF):
			d.newline()
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			d.logger.Error(err)
			line = ""
		}

		if d.Dispatch(ctx, domain.ParseCommand(line)) == Terminate {
			return nil
		}
	}
}

// Dispatch executes one command. Errors are reported through the logger and
// never end the loop.
func (d *Driver) Dispatch(ctx context.Context, cmd domain.Command) Outcome {
	if cmd.Kind == domain.KindEmpty {
		return Continue
	}

	ctx, span := d.tracer.Start(ctx, cmd.Kind.String())
	defer span.End()
	span.SetAttribute("argc", len(cmd.Argv))
	span.SetAttribute("command", cmd.Name())

	var (
		code int
		err  error
	)
	switch cmd.Kind {
	case domain.KindExit:
		return Terminate
	case domain.KindChangeDir:
		err = d.changeDir(cmd.Args())
	case domain.KindPrintWorkingDir:
		err = d.printWorkingDir()
	case domain.KindListFiles:
		err = d.listFiles()
	case domain.KindListProcesses:
		err = d.listProcesses(ctx)
	case domain.KindExternal:
		code, err = d.executor.Execute(ctx, cmd.Argv, d.stdio)
	case domain.KindEmpty:
	}

	if err != nil {
		code = 1
		span.RecordError(err)
		d.logger.Error(err)
	}
	span.SetAttribute("exit_code", code)

	return Continue
}

func (d *Driver) newline() {
	_, _ = io.WriteString(d.stdio.Stdout, "\n")
}
