package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the configuration directory.
	AppDirName = "minish"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// DefaultProcRoot is the mount point of the process pseudo-filesystem.
	DefaultProcRoot = "/proc"

	// DefaultPromptColor is ANSI blue.
	DefaultPromptColor = "4"
)

// PromptStyle controls how the prompt is colored.
type PromptStyle struct {
	// Color is a termenv color: an ANSI index ("0"-"255") or "#rrggbb".
	Color string
	Bold  bool
}

// Config is the resolved shell configuration.
type Config struct {
	// Path is the file the config was loaded from, empty when defaults are used.
	Path     string
	Prompt   PromptStyle
	ProcRoot string
	PTY      bool
	LogJSON  bool
	Trace    bool
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Prompt: PromptStyle{
			Color: DefaultPromptColor,
			Bold:  true,
		},
		ProcRoot: DefaultProcRoot,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/minish/config.yaml,
// falling back to ~/.config/minish/config.yaml.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName, ConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppDirName, ConfigFileName)
}
