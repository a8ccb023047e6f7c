package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDemoCommand creates "nualg demo": render one of the worked scenarios.
func NewDemoCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "demo [scenario]",
		Short:     "Run a worked N/U algebra scenario",
		Long:      "Renders a narrative walk-through: basic (core operations), engineering\n(beam stress & buckling), or psychology (effect sizes & meta-analysis).",
		ValidArgs: []string{"basic", "engineering", "psychology"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root.Log.Debug("rendering demo", "scenario", args[0])

			var (
				out string
				err error
			)
			switch args[0] {
			case "basic":
				out = basicDemo()
			case "engineering":
				out, err = engineeringDemo()
			case "psychology":
				out, err = psychologyDemo()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}

	return cmd
}
