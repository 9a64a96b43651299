package shell_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/minish/internal/adapters/shell"
)

func writeExecutable(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	return path
}

func TestLookPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeExecutable(t, first, "tool", 0o644)
	want := writeExecutable(t, second, "tool", 0o755)

	env := []string{"HOME=/nowhere", "PATH=" + first + string(os.PathListSeparator) + second}

	got, err := shell.LookPath("tool", env)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookPath_NotFound(t *testing.T) {
	_, err := shell.LookPath("tool", []string{"PATH=" + t.TempDir()})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	_, err = shell.LookPath("tool", nil)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestLookPath_EmptyElementIsCurrentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeExecutable(t, dir, "hello", 0o755)

	for _, path := range []string{":/usr/bin", "/usr/bin::/bin", "."} {
		got, err := shell.LookPath("hello", []string{"PATH=" + path})

		require.NoError(t, err, path)
		assert.Equal(t, "./hello", got, path)
	}
}

func TestLookPath_FirstPathEntryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeExecutable(t, first, "tool", 0o755)
	writeExecutable(t, second, "tool", 0o755)

	got, err := shell.LookPath("tool", []string{"PATH=" + first, "PATH=" + second})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLookPath_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tool"), 0o755))

	_, err := shell.LookPath("tool", []string{"PATH=" + dir})

	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestCommand_PreservesArgv0(t *testing.T) {
	dir := t.TempDir()
	path := writeExecutable(t, dir, "tool", 0o755)

	cmd, err := shell.Command(t.Context(), []string{"tool", "-x", "y"}, []string{"PATH=" + dir})

	require.NoError(t, err)
	assert.Equal(t, path, cmd.Path)
	assert.Equal(t, []string{"tool", "-x", "y"}, cmd.Args)
}

func TestCommand_SlashSkipsLookup(t *testing.T) {
	cmd, err := shell.Command(t.Context(), []string{"./tool"}, []string{"PATH=/usr/bin"})

	require.NoError(t, err)
	assert.Equal(t, "./tool", cmd.Args[0])
}

func TestCommand_NotFound(t *testing.T) {
	_, err := shell.Command(t.Context(), []string{"notacommand"}, []string{"PATH=" + t.TempDir()})

	require.Error(t, err)
	assert.ErrorContains(t, err, "exec() failed")
	assert.ErrorIs(t, err, exec.ErrNotFound)
}
