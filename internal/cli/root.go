// Package cli assembles the nualg command tree: dataset generation and the
// narrative demos over the N/U algebra.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds the global flags shared by all commands.
type RootOptions struct {
	Verbose bool

	// Log is the CLI logger, configured by the persistent pre-run.
	Log *slog.Logger
}

// NewRootCommand creates the nualg root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nualg",
		Short: "Conservative uncertainty propagation with the N/U algebra",
		Long: "nualg propagates measurement uncertainty through arithmetic with\n" +
			"conservative (nominal, uncertainty) pairs, generates the validation\n" +
			"datasets comparing the algebra to Gaussian, interval and Monte Carlo\n" +
			"baselines, and runs worked demos.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Log = slog.New(newCLIHandler(cmd.ErrOrStderr(), level))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}
