// SPDX-License-Identifier: MIT
// Package: mstlab/edgesort
//
// extract.go: free functions turning a graph representation into a flat
// edge slice. Shared by every strategy; the representation only changes how
// duplicates (each pair is seen from both endpoints) are suppressed.
//
// Determinism:
//   - FromMatrix emits edges ascending by (Left, Right).
//   - FromList follows neighbor-list order; for graphs whose edges were
//     inserted in row-major pair order (every builder graph) that is the
//     same (Left, Right) ascent.

package edgesort

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mstlab/core"
)

// FromList collects the edges reachable through the adjacency-list view.
//
// Steps:
//  1. Walk vertices in name order and their neighbor lists in list order.
//  2. Resolve each neighbor to the vertex-owned *core.Edge (O(1) lookup).
//  3. Keep the first sighting of every edge pointer.
//
// Complexity: O(n + m).
func FromList(g *core.Graph) ([]*core.Edge, error) {
	out := make([]*core.Edge, 0, g.Size())
	seen := make(map[*core.Edge]struct{}, g.Size())

	for _, v := range g.Vertices() {
		nbs, err := g.Neighbors(v.Name)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			e := v.Edge(nb)
			if e == nil {
				// list and vertex edges disagree: broken graph invariant
				return nil, fmt.Errorf("edgesort: list entry %d→%d has no edge: %w", v.Name, nb, core.ErrVertexNotOnEdge)
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out, nil
}

// FromMatrix builds edges from the non-zero cells of the adjacency matrix.
//
// A visited-pairs bit set over the n×n cells records (j,i) whenever (i,j)
// produces an edge, so the symmetric cell is skipped later.
// Complexity: O(n²) time, n² bits of memory.
func FromMatrix(g *core.Graph) []*core.Edge {
	n := g.Order()
	out := make([]*core.Edge, 0, g.Size())
	visited := bits.New(n * n)

	for i := 0; i < n; i++ {
		row, _ := g.Row(i)
		for j, w := range row {
			if visited.Bit(i*n+j) == 1 {
				continue
			}
			if w > 0 {
				out = append(out, core.NewEdge(i, j, w))
				visited.SetBit(j*n+i, 1)
			}
		}
	}

	return out
}

// Extract dispatches to FromList or FromMatrix.
func Extract(g *core.Graph, rep core.Representation) ([]*core.Edge, error) {
	switch rep {
	case core.AdjacencyList:
		return FromList(g)
	case core.AdjacencyMatrix:
		return FromMatrix(g), nil
	default:
		return nil, fmt.Errorf("edgesort: Extract(%v): %w", rep, core.ErrUnknownRepresentation)
	}
}
