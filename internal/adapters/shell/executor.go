// Package shell provides the executor that runs external programs for minish.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// signalExitBase is added to the signal number of a child killed by a signal,
// matching the convention of POSIX shells.
const signalExitBase = 128

// defaultWinsize is the terminal size given to children in PTY mode.
var defaultWinsize = &pty.Winsize{Rows: 24, Cols: 80}

// Executor implements ports.Executor using os/exec, optionally on a pseudo-terminal.
type Executor struct {
	usePTY atomic.Bool
}

// NewExecutor creates an Executor that connects children to the caller's stdio.
func NewExecutor() *Executor {
	return &Executor{}
}

// SetPTY switches PTY mode. In PTY mode the child runs on a fresh pseudo-terminal
// whose output is copied to the caller's stdout; stdin is not forwarded.
func (e *Executor) SetPTY(enable bool) {
	e.usePTY.Store(enable)
}

// Execute runs argv to completion and returns its exit status.
// A non-zero exit status is not an error.
func (e *Executor) Execute(ctx context.Context, argv []string, stdio ports.Stdio) (int, error) {
	if len(argv) == 0 {
		return 0, nil
	}

	cmd, err := command(ctx, argv, os.Environ())
	if err != nil {
		return 0, err
	}

	if e.usePTY.Load() {
		return runPTY(cmd, argv[0], stdio.Stdout)
	}

	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	if err := cmd.Start(); err != nil {
		return 0, execFailed(err, argv[0])
	}
	return wait(cmd)
}

// command builds the exec.Cmd for argv. Names without a slash are resolved on PATH;
// argv[0] is passed to the child unchanged.
func command(ctx context.Context, argv []string, env []string) (*exec.Cmd, error) {
	name := argv[0]

	executable := name
	if !strings.Contains(name, "/") {
		lp, err := lookPath(name, env)
		if err != nil {
			return nil, execFailed(err, name)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Env = env
	return cmd, nil
}

func runPTY(cmd *exec.Cmd, name string, stdout io.Writer) (int, error) {
	ptmx, err := pty.StartWithSize(cmd, defaultWinsize)
	if err != nil {
		return 0, execFailed(err, name)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master fails with EIO once the child side is closed.
		_, _ = io.Copy(stdout, ptmx)
	}()

	code, waitErr := wait(cmd)
	<-ioDone
	return code, waitErr
}

// wait blocks until cmd exits and maps its state to an exit status.
func wait(cmd *exec.Cmd) (int, error) {
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr.ProcessState), nil
	}

	// A cancelled context kills the child; report how it ended.
	if cmd.ProcessState != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return exitCode(cmd.ProcessState), nil
	}

	if errors.Is(err, syscall.EINTR) {
		if cmd.ProcessState != nil {
			return exitCode(cmd.ProcessState), nil
		}
		return 0, nil
	}

	return 0, zerr.With(zerr.Wrap(err, domain.ErrWaitFailed.Error()), "command", cmd.Args[0])
}

func exitCode(state *os.ProcessState) int {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return signalExitBase + int(status.Signal())
	}
	return state.ExitCode()
}

func execFailed(err error, name string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "command", name)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		candidate := filepath.Join(dir, file)
		if dir == "" || dir == "." {
			// Unix shell semantics: path element "" means ".". The "./" prefix
			// keeps exec from searching PATH again.
			candidate = "." + string(filepath.Separator) + file
		}
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
