package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

// Output file names, fixed to match the reference datasets.
const (
	FileAdditionSweep    = "addition_sweep.csv"
	FileProductSweep     = "product_sweep.csv"
	FileIntervalRelation = "interval_relation.csv"
	FileIntervalWithRel  = "interval_relation_with_rel.csv"
	FileChainExperiment  = "chain_experiment.csv"
	FileMonteCarlo       = "mc_comparisons.csv"
	FileInvariantsGrid   = "invariants_grid.csv"
	FileAssociativity    = "associativity_nominal_diffs.csv"
	FileAssociativityExt = "associativity_nominal_extended.csv"
	FileSummary          = "summary.json"
)

// Generator runs the validation-dataset suite and writes its files.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// NewGenerator builds a Generator; a nil logger falls back to slog.Default.
func NewGenerator(cfg Config, log *slog.Logger) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	return &Generator{cfg: cfg, log: log}, nil
}

// Run executes every experiment in order, writes the CSVs and summary.json
// under cfg.OutDir, and returns the built Summary. The context is checked
// between experiments so a long suite can be cancelled.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	rng := rand.New(rand.NewPCG(g.cfg.Seed, g.cfg.Seed))

	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create output dir: %w", err)
	}

	var res Results

	steps := []struct {
		name string
		run  func() error
	}{
		{FileAdditionSweep, func() error {
			res.Addition = AdditionSweep(rng, g.cfg.AdditionCases)
			return g.writeCSV(FileAdditionSweep, AdditionRow{}.header(), len(res.Addition),
				func(i int) []string { return res.Addition[i].record() })
		}},
		{FileProductSweep, func() error {
			res.Product = ProductSweep(rng, g.cfg.ProductCases)
			return g.writeCSV(FileProductSweep, ProductRow{}.header(), len(res.Product),
				func(i int) []string { return res.Product[i].record() })
		}},
		{FileIntervalRelation, func() error {
			res.Interval = IntervalRelation(rng, g.cfg.IntervalCases)
			if err := g.writeCSV(FileIntervalRelation, IntervalRow{}.header(), len(res.Interval),
				func(i int) []string { return res.Interval[i].record() }); err != nil {
				return err
			}
			return g.writeCSV(FileIntervalWithRel, IntervalRow{}.headerWithRel(), len(res.Interval),
				func(i int) []string { return res.Interval[i].recordWithRel() })
		}},
		{FileChainExperiment, func() error {
			res.Chain = ChainExperiment(rng, g.cfg.ChainTrials, g.cfg.ChainLengths)
			return g.writeCSV(FileChainExperiment, ChainRow{}.header(), len(res.Chain),
				func(i int) []string { return res.Chain[i].record() })
		}},
		{FileMonteCarlo, func() error {
			rows, err := MonteCarloComparisons(rng, g.cfg.MonteCarloSamples, g.cfg.MonteCarloPairsPerDist)
			if err != nil {
				return err
			}
			res.MonteCarlo = rows
			return g.writeCSV(FileMonteCarlo, MonteCarloRow{}.header(), len(rows),
				func(i int) []string { return rows[i].record() })
		}},
		{FileInvariantsGrid, func() error {
			res.Invariants = InvariantsGrid()
			return g.writeCSV(FileInvariantsGrid, InvariantRow{}.header(), len(res.Invariants),
				func(i int) []string { return res.Invariants[i].record() })
		}},
		{FileAssociativity, func() error {
			res.Associativity = AssociativitySweep(rng, g.cfg.AssociativityCases)
			if err := g.writeCSV(FileAssociativity, AssociativityRow{}.header(), len(res.Associativity),
				func(i int) []string { return res.Associativity[i].record() }); err != nil {
				return err
			}
			return g.writeCSV(FileAssociativityExt, AssociativityRow{}.headerExtended(), len(res.Associativity),
				func(i int) []string { return res.Associativity[i].recordExtended() })
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.log.Info("generating", "file", step.name)
		if err := step.run(); err != nil {
			return nil, err
		}
	}

	summary := BuildSummary(g.cfg, res, time.Since(start).Seconds())
	if err := g.writeSummary(summary); err != nil {
		return nil, err
	}
	g.log.Info("suite complete", "runtime_sec", summary.RuntimeSec)

	return &summary, nil
}

// writeCSV streams rows through encoding/csv into OutDir/name.
func (g *Generator) writeCSV(name string, header []string, n int, record func(int) []string) error {
	path := filepath.Join(g.cfg.OutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("dataset: write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(record(i)); err != nil {
			return fmt.Errorf("dataset: write %s row %d: %w", name, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("dataset: flush %s: %w", name, err)
	}
	g.log.Debug("wrote", "file", name, "rows", n)

	return nil
}

// writeSummary marshals the summary with indentation, matching the
// reference summary.json layout.
func (g *Generator) writeSummary(s Summary) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("dataset: marshal summary: %w", err)
	}
	path := filepath.Join(g.cfg.OutDir, FileSummary)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("dataset: write summary: %w", err)
	}

	return nil
}
