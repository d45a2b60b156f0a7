// Package commands implements the CLI commands for the tvoy launcher.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/tvoy/internal/app"
	"go.trai.ch/tvoy/internal/build"
	"go.trai.ch/tvoy/internal/core/domain"
)

// CLI represents the command line interface for tvoy.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "tvoy <input-file> [extra args...]",
		Short: "Convert a broker XLSX report into the target workbook format",
		Long: "tvoy provisions a Python environment and runs the broker report converter.\n" +
			"The result is written next to the input file as tvoy_result.xlsx.\n" +
			"Arguments after the input file are forwarded to the converter verbatim.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return domain.ErrUsage
			}
			return a.Run(cmd.Context(), args)
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Everything after the input file belongs to the converter, not to us.
	rootCmd.Flags().SetInterspersed(false)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w interface{ Write(p []byte) (int, error) }) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
