// Package testutil provides testing utilities for hermes.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG for generating feature vectors and a
// brute-force reference for ranking candidates by distance.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.FeatureVector(id, 128)        // uniform [-1, 1)
//	list := rng.FeatureVectors(100, 128)   // ids 0..99
//
// # Exact Ranking (Ground Truth)
//
//	results, _ := testutil.ExactTopK(query, list, k, distance.NewEuclidean())
package testutil
