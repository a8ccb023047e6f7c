package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the published validation run.
const (
	// DefaultSeed is the RNG seed of the reference dataset.
	DefaultSeed uint64 = 20250926

	// DefaultAbsTol is the absolute tolerance for violation counting.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance for violation counting.
	DefaultRelTol = 1e-12
)

// Config controls the validation-dataset suite. Zero or missing fields are
// not defaulted implicitly — start from DefaultConfig and override.
type Config struct {
	// Seed drives every RNG in the suite; equal seeds give equal datasets.
	Seed uint64 `yaml:"seed"`

	// OutDir receives the CSV and JSON files.
	OutDir string `yaml:"out_dir"`

	// AbsTol and RelTol bound acceptable floating-point drift when counting
	// violations in the summary.
	AbsTol float64 `yaml:"abs_tol"`
	RelTol float64 `yaml:"rel_tol"`

	// Per-experiment sizes.
	AdditionCases      int   `yaml:"addition_cases"`
	ProductCases       int   `yaml:"product_cases"`
	IntervalCases      int   `yaml:"interval_cases"`
	ChainTrials        int   `yaml:"chain_trials"`
	ChainLengths       []int `yaml:"chain_lengths"`
	AssociativityCases int   `yaml:"associativity_cases"`

	// Monte Carlo sizing: samples per draw and pairs per distribution family.
	MonteCarloSamples      int `yaml:"monte_carlo_samples"`
	MonteCarloPairsPerDist int `yaml:"monte_carlo_pairs_per_dist"`
}

// DefaultConfig returns the reference-run configuration.
func DefaultConfig() Config {
	return Config{
		Seed:                   DefaultSeed,
		OutDir:                 ".",
		AbsTol:                 DefaultAbsTol,
		RelTol:                 DefaultRelTol,
		AdditionCases:          8000,
		ProductCases:           30000,
		IntervalCases:          30000,
		ChainTrials:            800,
		ChainLengths:           []int{3, 5, 10, 20},
		AssociativityCases:     20000,
		MonteCarloSamples:      30000,
		MonteCarloPairsPerDist: 6,
	}
}

// LoadConfig reads a yaml file over the defaults, so partial files only
// override what they name.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dataset: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("dataset: parse config: %w", err)
	}

	return cfg, cfg.validate()
}

// validate rejects configurations the experiments cannot run with.
func (c Config) validate() error {
	if c.AdditionCases <= 0 || c.ProductCases <= 0 || c.IntervalCases <= 0 ||
		c.ChainTrials <= 0 || c.AssociativityCases <= 0 ||
		c.MonteCarloSamples < 2 || c.MonteCarloPairsPerDist <= 0 {
		return fmt.Errorf("dataset: all case counts must be positive")
	}
	if len(c.ChainLengths) == 0 {
		return fmt.Errorf("dataset: at least one chain length required")
	}
	for _, l := range c.ChainLengths {
		if l < 2 {
			return fmt.Errorf("dataset: chain length %d too short", l)
		}
	}

	return nil
}
