// Package testutil provides testing utilities for closestpair.
//
// This package is intended for use in tests and benchmarks only; production
// code generates points with pointgen and cross-checks with
// closestpair.BruteForce.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, -100, 100)
//	pts = rng.ClusteredPoints(1000, 8, 0.5)
//
// # Ground Truth
//
// BruteForce is written independently of the closestpair package so that it
// can serve as an oracle for it.
//
//	want := testutil.BruteForce(pts)
package testutil
