// SPDX-License-Identifier: MIT

// Package dfs implements depth-first reachability over the adjacency-list
// view of a core.Graph.
//
// Key features:
//   - Reach(g, root, opts...): walk from root, recording discovery order and predecessors.
//   - IsConnected(g): Reach from vertex 0 and compare the reached count with n.
//   - The visited set is a bit set owned by the caller (WithVisited) or by the
//     call; it is always cleared before returning, so no vertex state leaks
//     between traversals.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the recursion stack, predecessors and order.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if root is outside [0, n).
//   - ErrVisitedSize          if a caller-owned visited set has the wrong length.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/mstlab/core"
)

// walker encapsulates state during a walk.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited *bits.Bits
	res     *Result
}

// Reach performs a depth-first search of g starting at root.
// Neighbors are explored in adjacency-list order.
func Reach(g *core.Graph, root int, opts ...Option) (*Result, error) {
	// 1. Validate input graph and root
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("dfs: root %d with n=%d: %w", root, n, ErrStartVertexNotFound)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve the visited set
	visited := dopts.Visited
	if visited == nil {
		set := bits.New(n)
		visited = &set
	} else if visited.Num != n {
		return nil, fmt.Errorf("dfs: visited has %d bits, n=%d: %w", visited.Num, n, ErrVisitedSize)
	}
	// always hand the set back clean
	defer visited.ClearAll()

	// 4. Initialize result
	res := &Result{
		Predecessors: make([]int, n),
		Order:        make([]int, 0, n),
	}
	for i := range res.Predecessors {
		res.Predecessors[i] = NoPredecessor
	}

	w := &walker{graph: g, opts: dopts, visited: visited, res: res}
	if err := w.traverse(root, NoPredecessor); err != nil {
		return res, err
	}

	return res, nil
}

// traverse marks name as visited, records its predecessor and recurses into
// every undiscovered neighbor.
func (w *walker) traverse(name, from int) error {
	w.visited.SetBit(name, 1)
	w.res.Predecessors[name] = from
	w.res.Order = append(w.res.Order, name)
	w.res.Count++

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(name); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", name, err)
		}
	}

	nbs, err := w.graph.Neighbors(name)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", name, err)
	}
	for _, next := range nbs {
		if w.visited.Bit(next) == 1 {
			continue
		}
		if err = w.traverse(next, name); err != nil {
			return err
		}
	}

	return nil
}

// IsConnected reports whether every vertex of g is reachable from vertex 0.
// The returned Result holds the predecessor array of that walk.
// A graph with no vertices is reported as not connected.
func IsConnected(g *core.Graph, opts ...Option) (bool, *Result, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	if g.Order() == 0 {
		return false, &Result{}, nil
	}
	res, err := Reach(g, 0, opts...)
	if err != nil {
		return false, res, err
	}

	return res.Count == g.Order(), res, nil
}
