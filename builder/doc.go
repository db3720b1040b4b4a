// SPDX-License-Identifier: MIT

// Package builder samples the random connected graphs the MST benchmarks
// run on.
//
// Model (Erdős–Rényi-like, undirected, weighted):
//   - n vertices named 0..n-1.
//   - Unordered pairs {i,j}, i<j, are tried in row-major order (i asc, j asc).
//   - A pair is connected when a draw from the edge stream is <= p.
//   - A connected pair gets a weight drawn uniformly from [1, n] by the
//     weight stream.
//
// Streams:
//
//	edge   = rand.New(rand.NewSource(seed))
//	weight = rand.New(rand.NewSource(seed * 2))
//
// Both streams are created fresh for every attempt, so a fixed (n, seed, p)
// always yields the same graph.
//
// Connectivity:
//
// After sampling, a depth-first walk from vertex 0 (package dfs) must reach
// all n vertices. Otherwise every edge is discarded and the graph is sampled
// again from re-seeded streams. With the default options this loop has no
// bound: a (seed, p) pair whose sample is disconnected never terminates.
// WithMaxAttempts and WithContext exist for callers that need a bounded run.
//
// Errors:
//
//	ErrTooFewVertices     - n < 2.
//	ErrInvalidProbability - p outside [0,1] (or NaN).
//	ErrConstructFailed    - the attempt cap was reached without a connected sample.
//	ctx.Err()             - the context was cancelled between attempts.
package builder
