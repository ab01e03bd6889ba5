// Package commands implements the CLI commands for nodal.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/nodal/internal/app"
	"go.trai.ch/nodal/internal/build"
)

// DefaultConfig is the project file read when --config is not given.
const DefaultConfig = "nodal.yaml"

// CLI represents the command line interface for nodal.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nodal",
		Short:         "Evaluate cross-domain node graphs and play back their frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfig, "Path to the project file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			cli.setLogLevel(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(cli.newEvalCmd())
	rootCmd.AddCommand(cli.newPlayCmd())
	rootCmd.AddCommand(cli.newRecordCmd())
	rootCmd.AddCommand(cli.newDescriptorsCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// loadProject reads the project named by --config into the application.
func (c *CLI) loadProject(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	return c.components.App.Load(cmd.Context(), path)
}

func (c *CLI) setLogLevel(level slog.Level) {
	if l, ok := c.components.Logger.(interface{ SetLevel(slog.Level) }); ok {
		l.SetLevel(level)
	}
}
