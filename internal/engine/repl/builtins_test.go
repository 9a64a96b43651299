package repl_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestChangeDir_Home(t *testing.T) {
	for _, input := range []string{"cd", "cd ~", "cd  ~ "} {
		t.Run(input, func(t *testing.T) {
			h := newHarness(t)
			chdirTemp(t)
			home, err := filepath.EvalSymlinks(t.TempDir())
			require.NoError(t, err)
			h.accounts.EXPECT().HomeDir().Return(home, nil)

			h.driver.Dispatch(t.Context(), domain.ParseCommand(input))

			assert.Equal(t, home, cwd(t))
		})
	}
}

func TestChangeDir_HomeSubdirectory(t *testing.T) {
	h := newHarness(t)
	chdirTemp(t)
	home, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "docs", "notes"), 0o750))
	h.accounts.EXPECT().HomeDir().Return(home, nil).Times(2)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("cd ~/docs"))
	assert.Equal(t, filepath.Join(home, "docs"), cwd(t))

	h.driver.Dispatch(t.Context(), domain.ParseCommand("cd ~/docs/notes"))
	assert.Equal(t, filepath.Join(home, "docs", "notes"), cwd(t))
}

func TestChangeDir_TooManyArguments(t *testing.T) {
	h := newHarness(t)
	dir := chdirTemp(t)
	h.logger.EXPECT().Error(domain.ErrTooManyArguments)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("cd /tmp /var"))

	assert.Equal(t, dir, cwd(t))
}

func TestChangeDir_HomeLookupFails(t *testing.T) {
	h := newHarness(t)
	dir := chdirTemp(t)
	lookupErr := zerr.With(zerr.Wrap(errors.New("unknown userid 4242"), domain.ErrHomeLookupFailed.Error()), "uid", 4242)
	h.accounts.EXPECT().HomeDir().Return("", lookupErr)
	h.logger.EXPECT().Error(lookupErr)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("cd ~/docs"))

	assert.Equal(t, dir, cwd(t))
}

func TestChangeDir_Failure(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{name: "missing directory", arg: "does-not-exist"},
		{name: "tilde user is literal", arg: "~root"},
		{name: "regular file", arg: "file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			dir := chdirTemp(t)
			require.NoError(t, os.WriteFile("file.txt", nil, 0o600))

			var reported error
			h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { reported = err })

			h.driver.Dispatch(t.Context(), domain.ParseCommand("cd "+tt.arg))

			require.Error(t, reported)
			assert.ErrorContains(t, reported, domain.ErrChangeDirFailed.Error())
			assert.Equal(t, dir, cwd(t))
		})
	}
}

func TestPrintWorkingDir(t *testing.T) {
	h := newHarness(t)
	dir := chdirTemp(t)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("pwd extra args"))

	assert.Equal(t, dir+"\n", h.stdout.String())
}

func TestPrintWorkingDir_ResolvesSymlinkedCwd(t *testing.T) {
	h := newHarness(t)
	base := chdirTemp(t)
	realDir := filepath.Join(base, "realdir")
	linkDir := filepath.Join(base, "linkdir")
	require.NoError(t, os.Mkdir(realDir, 0o750))
	require.NoError(t, os.Symlink(realDir, linkDir))
	t.Chdir(linkDir)
	t.Setenv("PWD", linkDir)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("pwd"))

	assert.Equal(t, realDir+"\n", h.stdout.String())
}

func TestPrintWorkingDir_RemovedDirectory(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(chdirTemp(t), "gone")
	require.NoError(t, os.Mkdir(dir, 0o750))
	t.Chdir(dir)
	require.NoError(t, os.Remove(dir))

	h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrWorkingDirFailed.Error())
	})

	h.driver.Dispatch(t.Context(), domain.ParseCommand("pwd"))

	assert.Empty(t, h.stdout.String())
}

func TestListFiles(t *testing.T) {
	h := newHarness(t)
	chdirTemp(t)
	names := []string{"a.txt", "b.txt", ".hidden", "sub"}
	for _, name := range names[:3] {
		require.NoError(t, os.WriteFile(name, nil, 0o600))
	}
	require.NoError(t, os.Mkdir("sub", 0o750))

	h.driver.Dispatch(t.Context(), domain.ParseCommand("lf"))

	got := strings.Split(strings.TrimSuffix(h.stdout.String(), "\n"), "\n")
	assert.ElementsMatch(t, names, got)
	assert.NotContains(t, got, ".")
	assert.NotContains(t, got, "..")
}

func TestListFiles_ManyEntries(t *testing.T) {
	h := newHarness(t)
	chdirTemp(t)
	var want []string
	for i := range 150 {
		name := fmt.Sprintf("file%03d", i)
		want = append(want, name)
		require.NoError(t, os.WriteFile(name, nil, 0o600))
	}

	h.driver.Dispatch(t.Context(), domain.ParseCommand("lf"))

	got := strings.Split(strings.TrimSuffix(h.stdout.String(), "\n"), "\n")
	slices.Sort(got)
	slices.Sort(want)
	assert.Equal(t, want, got)
}

func TestListFiles_EmptyDirectory(t *testing.T) {
	h := newHarness(t)
	chdirTemp(t)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("lf"))

	assert.Empty(t, h.stdout.String())
}

func TestListProcesses(t *testing.T) {
	h := newHarness(t)
	h.processes.EXPECT().List(gomock.Any()).Return(domain.ProcessListing{
		Width: 5,
		Entries: []domain.ProcessEntry{
			{PID: "1", User: "root", Program: "systemd"},
			{PID: "42", User: "tester", Program: "bash"},
			{PID: "31337", User: "tester", Program: "minish"},
		},
	}, nil)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("lp"))

	g := goldie.New(t)
	g.Assert(t, "lp_listing", h.stdout.Bytes())
}

func TestListProcesses_Failure(t *testing.T) {
	h := newHarness(t)
	scanErr := zerr.With(zerr.Wrap(os.ErrNotExist, domain.ErrProcScanFailed.Error()), "path", "/proc")
	h.processes.EXPECT().List(gomock.Any()).Return(domain.ProcessListing{}, scanErr)
	h.logger.EXPECT().Error(scanErr)

	h.driver.Dispatch(t.Context(), domain.ParseCommand("lp"))

	assert.Empty(t, h.stdout.String())
}
