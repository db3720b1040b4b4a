// SPDX-License-Identifier: MIT
// Package: mstlab/core
//
// methods.go: edge insertion, reset and read-only accessors.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors(u) and AdjacencyList() return neighbors in insertion order.

package core

import "fmt"

// AddEdge connects u and v with the given weight and returns the new edge.
//
// Steps:
//  1. Validate endpoints, loop and weight.
//  2. Reject a second edge for the same pair.
//  3. Store one *Edge in the canonical slice and attach it to both endpoints.
//  4. Mirror it into the adjacency list (both directions) and the matrix (both cells).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) (*Edge, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if !g.valid(v) {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if weight < MinWeight {
		return nil, fmt.Errorf("AddEdge(%d,%d, w=%d): %w", u, v, weight, ErrBadWeight)
	}
	if g.matrix[u][v] != 0 {
		return nil, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	e := NewEdge(u, v, weight)
	g.edges = append(g.edges, e)
	g.vertices[u].attach(e)
	g.vertices[v].attach(e)

	g.adjList[u] = append(g.adjList[u], v)
	g.adjList[v] = append(g.adjList[v], u)

	g.matrix[u][v] = weight
	g.matrix[v][u] = weight

	return e, nil
}

// Reset discards every edge while keeping the vertices, leaving all three
// views empty. Used by the generator before resampling.
// Complexity: O(n²) because the matrix is zeroed.
func (g *Graph) Reset() {
	g.edges = nil
	for i := 0; i < g.n; i++ {
		g.vertices[i].detachAll()
		g.adjList[i] = nil
		clear(g.matrix[i])
	}
}

func (g *Graph) valid(name int) bool { return name >= 0 && name < g.n }

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Seed returns the seed recorded with WithOrigin.
func (g *Graph) Seed() int64 { return g.seed }

// Probability returns the connection probability recorded with WithOrigin.
func (g *Graph) Probability() float64 { return g.p }

// Vertex returns the vertex with the given name.
func (g *Graph) Vertex(name int) (*Vertex, error) {
	if !g.valid(name) {
		return nil, fmt.Errorf("Vertex(%d): %w", name, ErrVertexNotFound)
	}

	return g.vertices[name], nil
}

// Vertices returns all vertices ordered by name.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, g.n)
	copy(out, g.vertices)

	return out
}

// Edges returns the canonical edge set in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the adjacency-list row of u.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexNotFound)
	}

	return g.adjList[u], nil
}

// Row returns the adjacency-matrix row of u.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Row(u int) ([]int64, error) {
	if !g.valid(u) {
		return nil, fmt.Errorf("Row(%d): %w", u, ErrVertexNotFound)
	}

	return g.matrix[u], nil
}

// Weight returns the weight of {u,v}, or 0 when the pair is not connected
// or a name is out of range.
func (g *Graph) Weight(u, v int) int64 {
	if !g.valid(u) || !g.valid(v) {
		return 0
	}

	return g.matrix[u][v]
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool { return g.Weight(u, v) != 0 }

// AdjacencyList returns a copy of the adjacency-list view.
// Complexity: O(n + m).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for i, row := range g.adjList {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// AdjacencyMatrix returns a copy of the symmetric weight matrix (0 = no edge).
// Complexity: O(n²).
func (g *Graph) AdjacencyMatrix() [][]int64 {
	out := make([][]int64, g.n)
	for i, row := range g.matrix {
		out[i] = append([]int64(nil), row...)
	}

	return out
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []*Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
