// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// generate.go: Generate(n, seed, p): sample, certify connectivity, retry.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Weights are uniform integers in [MinWeight, n].
//   - Returns a connected graph, or an error when a cap/context stops the loop.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials + O(n + m) DFS per attempt.
//   - Space: O(n²) for the matrix view.
//
// Determinism:
//   - Stable vertex order: 0..n-1.
//   - Stable pair order: i asc, j asc with j > i.
//   - Streams re-seeded from (seed, 2·seed) on every attempt.

package builder

import (
	"math"
	"math/rand"
	"time"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/dfs"
)

// File-local constants.
const (
	methodGenerate = "Generate"
	// MinVertices is the smallest graph order Generate accepts.
	MinVertices = 2
	probMin     = 0.0
	probMax     = 1.0
	// weightStreamFactor derives the weight-stream seed from the input seed.
	weightStreamFactor = 2
)

// Result is a generated graph plus the facts the reporting layer prints
// about its construction.
type Result struct {
	// Graph is connected.
	Graph *core.Graph

	// Predecessors is the DFS predecessor array of the successful
	// connectivity check (dfs.NoPredecessor at the root).
	Predecessors []int

	// Attempts counts sampling rounds, the successful one included.
	Attempts int

	// Elapsed is the wall-clock time of the whole generation, retries included.
	Elapsed time.Duration
}

// GenerationMillis returns Elapsed in whole milliseconds.
func (r *Result) GenerationMillis() int64 { return r.Elapsed.Milliseconds() }

// Generate samples a connected random graph over n vertices.
//
// Steps:
//  1. Validate n and p.
//  2. Allocate the graph once; it is Reset between attempts.
//  3. Per attempt: seed both streams, sample every pair, walk from 0.
//  4. Connected ⇒ return. Otherwise log, honor cap/context, reset, repeat.
func Generate(n int, seed int64, p float64, opts ...Option) (*Result, error) {
	// 1) Validate parameters early.
	if n < MinVertices {
		return nil, builderErrorf(methodGenerate, ErrTooFewVertices, "n=%d < min=%d", n, MinVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, builderErrorf(methodGenerate, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}

	cfg := newBuilderConfig(opts...)
	log := cfg.logger.With().Int("n", n).Int64("seed", seed).Float64("p", p).Logger()

	start := time.Now()
	g := core.NewGraph(n, core.WithOrigin(seed, p))
	visited := bits.New(n) // one visited set reused by every connectivity check

	for attempt := 1; ; attempt++ {
		// 2) Sample from freshly seeded streams.
		if err := sample(g, seed, p); err != nil {
			return nil, builderErrorf(methodGenerate, err, "attempt %d", attempt)
		}

		// 3) Certify connectivity.
		ok, walk, err := dfs.IsConnected(g, dfs.WithVisited(&visited))
		if err != nil {
			return nil, builderErrorf(methodGenerate, err, "attempt %d", attempt)
		}
		log.Debug().Int("attempt", attempt).Int("edges", g.Size()).Int("reached", walk.Count).Msg("sampled graph")

		if ok {
			return &Result{
				Graph:        g,
				Predecessors: walk.Predecessors,
				Attempts:     attempt,
				Elapsed:      time.Since(start),
			}, nil
		}

		// 4) Disconnected: bounded callers stop here.
		log.Warn().Int("attempt", attempt).Int("reached", walk.Count).Msg("graph is not connected, regenerating")
		if cfg.maxAttempts > 0 && attempt >= cfg.maxAttempts {
			return nil, builderErrorf(methodGenerate, ErrConstructFailed, "no connected sample in %d attempts", attempt)
		}
		if err = cfg.ctx.Err(); err != nil {
			return nil, builderErrorf(methodGenerate, err, "after %d attempts", attempt)
		}
		g.Reset()
	}
}

// sample fills an edgeless g: one Bernoulli(p) trial per unordered pair,
// and one uniform weight in [1, n] per accepted pair.
func sample(g *core.Graph, seed int64, p float64) error {
	n := g.Order()
	edgeStream := rand.New(rand.NewSource(seed))
	weightStream := rand.New(rand.NewSource(seed * weightStreamFactor))
	span := n - int(core.MinWeight) + 1 // weights in [MinWeight, n]

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if edgeStream.Float64() > p {
				continue
			}
			w := core.MinWeight + int64(weightStream.Intn(span))
			if _, err := g.AddEdge(i, j, w); err != nil {
				return err
			}
		}
	}

	return nil
}
