// SPDX-License-Identifier: MIT

package edgesort

import (
	"time"

	"github.com/katalvlaran/mstlab/core"
)

// Timings holds the last measured extract-and-sort duration per representation.
type Timings struct {
	List   time.Duration
	Matrix time.Duration
}

// Timer benchmarks one Sorter over a graph, keeping a separate measurement
// for the list-derived and the matrix-derived paths.
type Timer struct {
	sorter  Sorter
	timings Timings
}

// NewTimer wraps s.
func NewTimer(s Sorter) *Timer { return &Timer{sorter: s} }

// Sorter returns the wrapped strategy.
func (t *Timer) Sorter() Sorter { return t.sorter }

// SortGraph extracts the edges of g through rep, sorts them and records the
// elapsed wall-clock time (extraction included) under rep.
func (t *Timer) SortGraph(g *core.Graph, rep core.Representation) ([]*core.Edge, time.Duration, error) {
	start := time.Now()
	edges, err := Extract(g, rep)
	if err != nil {
		return nil, 0, err
	}
	sorted := t.sorter.Sort(edges)
	elapsed := time.Since(start)

	if rep == core.AdjacencyList {
		t.timings.List = elapsed
	} else {
		t.timings.Matrix = elapsed
	}

	return sorted, elapsed, nil
}

// Timings returns the measurements recorded so far.
func (t *Timer) Timings() Timings { return t.timings }

// SortedEdges is the one-shot form: build the strategy, extract through rep,
// sort and report the elapsed time.
func SortedEdges(g *core.Graph, rep core.Representation, s Strategy, opts ...Option) ([]*core.Edge, time.Duration, error) {
	sorter, err := New(s, opts...)
	if err != nil {
		return nil, 0, err
	}

	return NewTimer(sorter).SortGraph(g, rep)
}
