// Package testutil provides testing utilities for connectome.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random populations and computing
// ground-truth run counts.
//
// # Random Population Generation
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.RandomPopulation(1, 10_000, 0.1, 50)
//
// # Ground Truth
//
//	runs := testutil.Runs(ids)
package testutil
