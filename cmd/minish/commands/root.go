// Package commands implements the CLI commands for the minish shell.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/minish/internal/app"
	"go.trai.ch/minish/internal/build"
)

// Application is the shell the root command starts.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// CLI represents the command line interface for minish.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.RunOptions
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "minish",
		Short:         "A minimal interactive shell",
		Long:          "minish reads commands line by line, runs the built-ins cd, pwd, lf, lp and exit itself and launches everything else as a program.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), c.opts)
		},
	}

	rootCmd.SetVersionTemplate(versionLine())

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to the config file (default $XDG_CONFIG_HOME/minish/config.yaml)")
	rootCmd.Flags().BoolVar(&c.opts.LogJSON, "log-json", false, "Write diagnostics as JSON")
	rootCmd.Flags().BoolVar(&c.opts.Trace, "trace", false, "Report the duration of every command")
	rootCmd.Flags().BoolVar(&c.opts.PTY, "pty", false, "Run programs on a pseudo-terminal when stdin is not a terminal")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the output of the CLI itself, not of the shell.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}
