// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
	"github.com/katalvlaran/mstlab/unionfind"
)

// Kruskal computes the MST of g from the edges of representation rep,
// ordered by strategy. rep and strategy override any WithRepresentation
// or WithStrategy in opts.
//
// Steps:
//  1. Validate: g != nil and g.Order() > 0. A single vertex is a trivial MST.
//  2. Extract the edges of rep and sort them with strategy.
//  3. Initialize a DisjointSet over [0, n).
//  4. Walk the sorted edges: Union(u,v) merges two components ⇒ accept the edge.
//  5. Stop at n-1 accepted edges; exhausting the list first ⇒ ErrDisconnected.
//
// Complexity: sort + O(m·α(n)). Memory: O(n + m).
func Kruskal(g *core.Graph, rep core.Representation, strategy edgesort.Strategy, opts ...Option) (*Result, error) {
	// 1. Validate graph and selectors.
	if g == nil || g.Order() == 0 {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	o.Method, o.Representation, o.Strategy = MethodKruskal, rep, strategy

	start := time.Now()
	sorter, err := edgesort.New(strategy, edgesort.WithShuffleSeed(o.ShuffleSeed))
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}

	// 2. Extract and sort.
	edges, err := edgesort.Extract(g, rep)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}
	sorted := sorter.Sort(edges)

	// 3. One component per vertex.
	n := g.Order()
	ds := unionfind.New(n)

	// 4. Greedy acceptance.
	var (
		mst   = make([]*core.Edge, 0, n-1)
		total int64
	)
	for _, e := range sorted {
		if len(mst) == n-1 {
			break
		}
		if ds.Union(e.Left, e.Right) {
			mst = append(mst, e)
			total += e.Weight
		}
	}

	// 5. A spanning tree has exactly n-1 edges.
	if len(mst) < n-1 {
		return nil, fmt.Errorf("Kruskal(%s, %s): %d of %d edges: %w", rep, strategy, len(mst), n-1, ErrDisconnected)
	}

	res := &Result{Edges: mst, TotalWeight: total, Elapsed: time.Since(start)}
	o.Logger.Debug().
		Str("method", MethodKruskal).
		Stringer("representation", rep).
		Stringer("strategy", strategy).
		Int64("total", total).
		Dur("elapsed", res.Elapsed).
		Msg("spanning tree computed")

	return res, nil
}
