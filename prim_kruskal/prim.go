// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/pq"
)

// noParent is the parent payload of every vertex before an edge reaches it.
const noParent = -1

// relaxFunc lowers the priority of every queued neighbor of u reachable
// through a lighter edge.
type relaxFunc func(h *pq.IndexedMinHeap, u int) error

// Prim computes the MST of g by growing one tree from the root vertex
// (DefaultRoot unless WithRoot), reading neighbors from representation rep.
//
// Steps:
//  1. Validate: g != nil, g.Order() > 0, root in range, rep known.
//  2. Insert every vertex: root with priority 0 and itself as parent,
//     the rest with pq.Infinity.
//  3. Loop until the heap is empty:
//     a. u = ExtractMin. Priority +Inf ⇒ ErrDisconnected.
//     b. u != root ⇒ emit {parent(u), u} with weight priority(u).
//     c. Relax every edge (u,v) with v still queued.
//
// Complexity: O((n+m) log n) on the list view, O(n² + m log n) on the matrix.
func Prim(g *core.Graph, rep core.Representation, opts ...Option) (*Result, error) {
	// 1. Validate graph, root and representation.
	if g == nil || g.Order() == 0 {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	o.Method, o.Representation = MethodPrim, rep

	n := g.Order()
	root := o.Root
	if root < 0 || root >= n {
		return nil, fmt.Errorf("Prim: root %d with n=%d: %w", root, n, ErrRootOutOfRange)
	}

	var relax relaxFunc
	switch rep {
	case core.AdjacencyList:
		relax = listRelax(g)
	case core.AdjacencyMatrix:
		relax = matrixRelax(g)
	default:
		return nil, fmt.Errorf("Prim: %w", core.ErrUnknownRepresentation)
	}

	start := time.Now()

	// 2. Every vertex starts queued.
	h := pq.NewIndexedMinHeap(n)
	for v := 0; v < n; v++ {
		if v == root {
			h.Insert(v, 0, v)
			continue
		}
		h.Insert(v, pq.Infinity, noParent)
	}

	// 3. Settle one vertex per extraction.
	var (
		mst   = make([]*core.Edge, 0, n-1)
		total int64
	)
	for !h.IsEmpty() {
		u := h.ExtractMin()
		w := h.Priority(u)
		if w == pq.Infinity {
			return nil, fmt.Errorf("Prim(%s): vertex %d unreachable from %d: %w", rep, u, root, ErrDisconnected)
		}
		if u != root {
			mst = append(mst, core.NewEdge(h.Parent(u), u, w))
			total += w
		}
		if err := relax(h, u); err != nil {
			return nil, fmt.Errorf("Prim(%s): %w", rep, err)
		}
	}

	res := &Result{Edges: mst, TotalWeight: total, Elapsed: time.Since(start)}
	o.Logger.Debug().
		Str("method", MethodPrim).
		Stringer("representation", rep).
		Int("root", root).
		Int64("total", total).
		Dur("elapsed", res.Elapsed).
		Msg("spanning tree computed")

	return res, nil
}

// listRelax walks u's adjacency list and reads each weight from the edge
// stored on the vertex.
func listRelax(g *core.Graph) relaxFunc {
	return func(h *pq.IndexedMinHeap, u int) error {
		vtx, err := g.Vertex(u)
		if err != nil {
			return err
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbs {
			if !h.Contains(v) {
				continue
			}
			e := vtx.Edge(v)
			if e == nil {
				return fmt.Errorf("vertex %d lists %d without an edge: %w", u, v, core.ErrVertexNotOnEdge)
			}
			if e.Weight < h.Priority(v) {
				h.DecreaseKey(v, e.Weight, u)
			}
		}

		return nil
	}
}

// matrixRelax scans row u of the weight matrix.
func matrixRelax(g *core.Graph) relaxFunc {
	return func(h *pq.IndexedMinHeap, u int) error {
		row, err := g.Row(u)
		if err != nil {
			return err
		}
		for v, w := range row {
			if w == 0 || !h.Contains(v) {
				continue
			}
			if w < h.Priority(v) {
				h.DecreaseKey(v, w, u)
			}
		}

		return nil
	}
}
