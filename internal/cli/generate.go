package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abba-01/nu-algebra/dataset"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	OutDir     string
	Seed       uint64
	ConfigPath string
}

// NewGenerateCommand creates "nualg generate": run the validation-dataset
// suite and write CSVs plus summary.json.
func NewGenerateCommand(root *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the N/U validation datasets",
		Long: "Runs the validation sweeps (addition vs RSS, products vs Gaussian and\n" +
			"interval baselines, chains, Monte Carlo, invariants, associativity) and\n" +
			"writes the CSV datasets plus summary.json.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := dataset.DefaultConfig()
			if opts.ConfigPath != "" {
				loaded, err := dataset.LoadConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.Seed
			}
			if cmd.Flags().Changed("out") {
				cfg.OutDir = opts.OutDir
			}

			gen, err := dataset.NewGenerator(cfg, root.Log)
			if err != nil {
				return err
			}

			summary, err := gen.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"generated %d addition, %d product, %d interval, %d chain, %d monte-carlo, %d invariant, %d associativity rows in %s\n",
				summary.Addition.Rows, summary.Product.Rows, summary.IntervalRelation.Rows,
				summary.Chain.Rows, summary.MonteCarlo.Rows, summary.Invariants.Rows,
				summary.Associativity.Rows, cfg.OutDir)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".", "output directory for datasets")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", dataset.DefaultSeed, "RNG seed for the suite")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "yaml config file (overrides defaults)")

	return cmd
}
