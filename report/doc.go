// Package report renders N/U pairs, their intervals and their stability
// verdicts as deterministic plain text for the narrative demos.
//
// All float formatting is fixed-width, so rendered reports are stable under
// a fixed input and safe to compare against golden files. The package is
// purely presentational: it reads pairs through the public nu API and adds
// no semantics of its own.
package report
