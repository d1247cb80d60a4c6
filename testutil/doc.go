// Package testutil provides testing utilities for kohonen.
//
// This package is intended for use in tests, benchmarks and demos only.
// It provides a lock-protected deterministic RNG plus helpers that build
// source sets and initial lattices from it.
//
// # Random Source Sets
//
//	rng := testutil.NewRNG(seed)
//	src := rng.UniformVectors(1000, 3)        // uniform [0, 1)
//	colors := rng.ColorVectors(1000)          // RGB triples in [0, 256)
//	blobs := rng.ClusteredVectors(1000, 2, 4, 0.05)
//
// # Initial Lattices
//
//	cells := testutil.SampleLattice(rng, src, 20, 20) // cells drawn from src
package testutil
