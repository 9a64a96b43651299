package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/minish/cmd/minish/commands"
	"go.trai.ch/minish/internal/app"
)

type recordingApp struct {
	calls int
	opts  app.RunOptions
	err   error
}

func (a *recordingApp) Run(_ context.Context, opts app.RunOptions) error {
	a.calls++
	a.opts = opts
	return a.err
}

func newCLI(a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetArgs(args)
	cli.SetOutput(out, out)
	return cli, out
}

func TestRoot_RunsShellWithDefaults(t *testing.T) {
	a := &recordingApp{}
	cli, _ := newCLI(a)

	require.NoError(t, cli.Execute(t.Context()))

	assert.Equal(t, 1, a.calls)
	assert.Equal(t, app.RunOptions{}, a.opts)
}

func TestRoot_Flags(t *testing.T) {
	a := &recordingApp{}
	cli, _ := newCLI(a, "--config", "/tmp/minish.yaml", "--log-json", "--trace", "--pty")

	require.NoError(t, cli.Execute(t.Context()))

	assert.Equal(t, app.RunOptions{
		ConfigPath: "/tmp/minish.yaml",
		LogJSON:    true,
		Trace:      true,
		PTY:        true,
	}, a.opts)
}

func TestRoot_ShortConfigFlag(t *testing.T) {
	a := &recordingApp{}
	cli, _ := newCLI(a, "-c", "custom.yaml")

	require.NoError(t, cli.Execute(t.Context()))
	assert.Equal(t, "custom.yaml", a.opts.ConfigPath)
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	a := &recordingApp{}
	cli, _ := newCLI(a, "script.sh")

	err := cli.Execute(t.Context())

	require.Error(t, err)
	assert.Zero(t, a.calls)
}

func TestRoot_UnknownFlag(t *testing.T) {
	a := &recordingApp{}
	cli, _ := newCLI(a, "--bogus")

	require.Error(t, cli.Execute(t.Context()))
	assert.Zero(t, a.calls)
}

func TestRoot_PropagatesRunError(t *testing.T) {
	want := errors.New("boom")
	a := &recordingApp{err: want}
	cli, _ := newCLI(a)

	assert.ErrorIs(t, cli.Execute(t.Context()), want)
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		a := &recordingApp{}
		cli, out := newCLI(a, args...)

		require.NoError(t, cli.Execute(t.Context()))

		assert.Equal(t, "minish version dev (commit: none, date: unknown)\n", out.String())
		assert.Zero(t, a.calls)
	}
}
