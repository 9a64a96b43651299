package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/minish/internal/core/domain"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty line", line: "", want: nil},
		{name: "only spaces", line: "    ", want: nil},
		{name: "single word", line: "pwd", want: []string{"pwd"}},
		{name: "arguments", line: "ls -l /tmp", want: []string{"ls", "-l", "/tmp"}},
		{name: "repeated spaces", line: "  cd   /tmp  ", want: []string{"cd", "/tmp"}},
		{name: "quotes are not honored", line: `echo "a b"`, want: []string{"echo", `"a`, `b"`}},
		{name: "tabs are not separators", line: "echo\ta", want: []string{"echo\ta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Tokenize(tt.line))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		argv []string
		want domain.Kind
	}{
		{argv: nil, want: domain.KindEmpty},
		{argv: []string{"cd"}, want: domain.KindChangeDir},
		{argv: []string{"cd", "a", "b"}, want: domain.KindChangeDir},
		{argv: []string{"exit"}, want: domain.KindExit},
		{argv: []string{"pwd"}, want: domain.KindPrintWorkingDir},
		{argv: []string{"lf"}, want: domain.KindListFiles},
		{argv: []string{"lp"}, want: domain.KindListProcesses},
		{argv: []string{"CD"}, want: domain.KindExternal},
		{argv: []string{"exit2"}, want: domain.KindExternal},
		{argv: []string{"ls", "-l"}, want: domain.KindExternal},
	}

	for _, tt := range tests {
		name := "none"
		if len(tt.argv) > 0 {
			name = tt.argv[0]
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.argv))
		})
	}
}

func TestParseCommand(t *testing.T) {
	cmd := domain.ParseCommand("cd  ~/docs")
	assert.Equal(t, domain.KindChangeDir, cmd.Kind)
	assert.Equal(t, "cd", cmd.Name())
	assert.Equal(t, []string{"~/docs"}, cmd.Args())

	empty := domain.ParseCommand("")
	assert.Equal(t, domain.KindEmpty, empty.Kind)
	assert.Empty(t, empty.Name())
	assert.Nil(t, empty.Args())
}

func TestKind_IsBuiltin(t *testing.T) {
	assert.False(t, domain.KindEmpty.IsBuiltin())
	assert.False(t, domain.KindExternal.IsBuiltin())
	assert.True(t, domain.KindListProcesses.IsBuiltin())
	assert.Equal(t, "lp", domain.KindListProcesses.String())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, domain.IsNumeric("1"))
	assert.True(t, domain.IsNumeric("4194304"))
	assert.False(t, domain.IsNumeric(""))
	assert.False(t, domain.IsNumeric("self"))
	assert.False(t, domain.IsNumeric("12a"))
	assert.False(t, domain.IsNumeric("-1"))
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "minish", "config.yaml"), domain.DefaultConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".config", "minish", "config.yaml"), domain.DefaultConfigPath())
}
