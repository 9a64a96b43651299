package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// dirBatch is the number of names fetched per directory read in lf.
const dirBatch = 64

// changeDir implements cd. Only the final composed path is changed to.
func (d *Driver) changeDir(args []string) error {
	target, err := d.resolveTarget(args)
	if err != nil {
		return err
	}

	if err := os.Chdir(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrChangeDirFailed.Error()), "path", target)
	}
	return nil
}

// resolveTarget maps the cd arguments to a path: none or "~" is the home
// directory, "~/rest" is below it, anything else is taken literally.
func (d *Driver) resolveTarget(args []string) (string, error) {
	if len(args) > 1 {
		return "", domain.ErrTooManyArguments
	}

	if len(args) == 1 && args[0] != "~" && !strings.HasPrefix(args[0], "~/") {
		return args[0], nil
	}

	home, err := d.accounts.HomeDir()
	if err != nil {
		return "", err
	}

	if len(args) == 0 || args[0] == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(args[0], "~/")), nil
}

func (d *Driver) printWorkingDir() error {
	cwd, err := unix.Getwd()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}
	_, err = fmt.Fprintln(d.stdio.Stdout, cwd)
	return err
}

// listFiles implements lf: every entry of the current directory except "." and "..",
// one per line, in directory order.
func (d *Driver) listFiles() error {
	dir, err := os.Open(".")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirOpenFailed.Error()), "path", ".")
	}
	defer func() { _ = dir.Close() }()

	for {
		names, err := dir.Readdirnames(dirBatch)
		for _, name := range names {
			if name == "." || name == ".." {
				continue
			}
			if _, werr := fmt.Fprintln(d.stdio.Stdout, name); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDirOpenFailed.Error()), "path", ".")
		}
	}
}

// listProcesses implements lp with the PID column right-justified to the widest
// numeric entry name.
func (d *Driver) listProcesses(ctx context.Context) error {
	listing, err := d.processes.List(ctx)
	if err != nil {
		return err
	}

	for _, e := range listing.Entries {
		if _, err := fmt.Fprintf(d.stdio.Stdout, "%*s %s %s\n", listing.Width, e.PID, e.User, e.Program); err != nil {
			return err
		}
	}
	return nil
}
