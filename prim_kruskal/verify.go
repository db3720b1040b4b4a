// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/unionfind"
)

// Verify checks that res is a spanning tree of g: exactly n-1 edges, each
// present in g with the same weight, no cycle, and a TotalWeight equal to
// the sum of its edges. It does not check minimality.
func Verify(g *core.Graph, res *Result) error {
	if g == nil || g.Order() == 0 || res == nil {
		return ErrInvalidGraph
	}

	n := g.Order()
	if len(res.Edges) != n-1 {
		return fmt.Errorf("Verify: %d edges, want %d: %w", len(res.Edges), n-1, ErrNotSpanning)
	}

	ds := unionfind.New(n)
	var total int64
	for _, e := range res.Edges {
		w := g.Weight(e.Left, e.Right)
		if w == 0 {
			return fmt.Errorf("Verify: %v: %w", e, ErrForeignEdge)
		}
		if w != e.Weight {
			return fmt.Errorf("Verify: %v, graph has %d: %w", e, w, ErrWeightMismatch)
		}
		if !ds.Union(e.Left, e.Right) {
			return fmt.Errorf("Verify: %v: %w", e, ErrCycle)
		}
		total += e.Weight
	}
	if total != res.TotalWeight {
		return fmt.Errorf("Verify: edges sum to %d, result says %d: %w", total, res.TotalWeight, ErrWeightMismatch)
	}

	return nil
}
