// Package dataset generates the N/U algebra validation datasets:
// reproducible CSV sweeps plus an aggregate JSON summary, comparing the
// algebra's conservative bounds against Gaussian, interval and Monte Carlo
// baselines.
//
// The suite reproduces seven experiments:
//
//	addition_sweep.csv       — cumulative sums vs Gaussian RSS (2–50 terms)
//	product_sweep.csv        — products vs first-order Gaussian propagation
//	interval_relation.csv    — products vs exact interval half-widths (+ a
//	                           _with_rel variant carrying relative errors)
//	chain_experiment.csv     — repeated multiplication vs interval chains
//	mc_comparisons.csv       — N/U bounds vs Monte Carlo sample deviations
//	                           over gaussian/uniform/laplace/student-t draws
//	invariants_grid.csv      — Catch/Flip invariant conservation on a grid
//	associativity_nominal_diffs.csv — (a·b)·c vs a·(b·c) nominal drift (+ an
//	                           _extended variant carrying relative drift)
//	summary.json             — min/median/max ratios and tolerance violations
//
// Everything is deterministic under Config.Seed; the default configuration
// mirrors the published validation run (seed 20250926, abs 1e-9, rel 1e-12).
// The generator only consumes the public nu and baseline APIs — it is batch
// glue, not part of the algebra.
package dataset
