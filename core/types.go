// SPDX-License-Identifier: MIT
// Package: mstlab/core
//
// types.go: Vertex, Edge, Graph, GraphOption, Representation and the
// sentinel errors of the core package.
//
// Errors:
//
//	ErrVertexNotFound      - vertex name outside [0, n).
//	ErrVertexNotOnEdge     - Other() called with a name that is not an endpoint.
//	ErrBadWeight           - weight < 1 (weights are positive integers).
//	ErrLoopNotAllowed      - self-loop (u == v).
//	ErrMultiEdgeNotAllowed - second edge for an already connected pair.
//	ErrUnknownRepresentation - unparsable representation name.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a name outside [0, n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexNotOnEdge indicates the given vertex is not one of the edge endpoints.
	ErrVertexNotOnEdge = errors.New("core: vertex is not an endpoint of the edge")

	// ErrBadWeight indicates a weight below MinWeight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnknownRepresentation indicates a representation name could not be parsed.
	ErrUnknownRepresentation = errors.New("core: unknown graph representation")
)

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// Vertex is a named graph node.
//
// Name is immutable and unique in [0, n). The vertex owns the edges incident
// to it, in attachment order, plus a neighbor → edge index used for O(1)
// lookups from the adjacency-list side.
type Vertex struct {
	// Name is the dense identifier of this vertex.
	Name int

	edges      []*Edge
	byNeighbor map[int]*Edge
}

func newVertex(name int) *Vertex {
	return &Vertex{Name: name, byNeighbor: make(map[int]*Edge)}
}

// Edges returns the incident edges in attachment order.
// The returned slice is a copy; the edges themselves are shared.
func (v *Vertex) Edges() []*Edge {
	out := make([]*Edge, len(v.edges))
	copy(out, v.edges)

	return out
}

// Edge returns the edge connecting v to neighbor, or nil when they are not adjacent.
// Complexity: O(1).
func (v *Vertex) Edge(neighbor int) *Edge {
	return v.byNeighbor[neighbor]
}

// Degree returns the number of incident edges.
func (v *Vertex) Degree() int { return len(v.edges) }

func (v *Vertex) attach(e *Edge) {
	other, _ := e.Other(v.Name)
	v.edges = append(v.edges, e)
	v.byNeighbor[other] = e
}

func (v *Vertex) detachAll() {
	v.edges = nil
	v.byNeighbor = make(map[int]*Edge)
}

// Edge is an immutable weighted connection between two vertices.
//
// Left is always the smaller endpoint name, Right the larger one; NewEdge
// normalizes the order so two edges for the same pair compare equal.
type Edge struct {
	// Left is the smaller endpoint name.
	Left int

	// Right is the larger endpoint name.
	Right int

	// Weight is a positive integer cost.
	Weight int64
}

// NewEdge builds an edge between u and v with the given weight,
// storing the endpoints in ascending order.
func NewEdge(u, v int, weight int64) *Edge {
	if u > v {
		u, v = v, u
	}

	return &Edge{Left: u, Right: v, Weight: weight}
}

// Less reports whether e orders strictly before o:
// by weight, then by left name, then by right name.
func (e *Edge) Less(o *Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	if e.Left != o.Left {
		return e.Left < o.Left
	}

	return e.Right < o.Right
}

// Equal reports whether e and o connect the same pair with the same weight.
func (e *Edge) Equal(o *Edge) bool {
	return e.Left == o.Left && e.Right == o.Right && e.Weight == o.Weight
}

// Other returns the endpoint opposite to name.
func (e *Edge) Other(name int) (int, error) {
	switch name {
	case e.Left:
		return e.Right, nil
	case e.Right:
		return e.Left, nil
	default:
		return 0, fmt.Errorf("edge %d-%d, vertex %d: %w", e.Left, e.Right, name, ErrVertexNotOnEdge)
	}
}

// String renders the edge as "u v weight = w", the line format of the reports.
func (e *Edge) String() string {
	return fmt.Sprintf("%d %d weight = %d", e.Left, e.Right, e.Weight)
}

// Representation selects which projection of the graph an algorithm reads.
type Representation int

const (
	// AdjacencyList reads neighbors from the ordered per-vertex neighbor lists.
	AdjacencyList Representation = iota
	// AdjacencyMatrix reads weights from the symmetric n×n matrix.
	AdjacencyMatrix
)

// Representations lists every representation in report order.
var Representations = []Representation{AdjacencyMatrix, AdjacencyList}

// String returns the upper-case report label of r.
func (r Representation) String() string {
	switch r {
	case AdjacencyList:
		return "LIST"
	case AdjacencyMatrix:
		return "MATRIX"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ParseRepresentation accepts "list" or "matrix" in any case.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "adjacency-list":
		return AdjacencyList, nil
	case "matrix", "adjacency-matrix":
		return AdjacencyMatrix, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRepresentation)
	}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithOrigin records the generation inputs the graph was sampled from.
func WithOrigin(seed int64, p float64) GraphOption {
	return func(g *Graph) {
		g.seed = seed
		g.p = p
	}
}

// Graph is an undirected, weighted simple graph over the names [0, n).
//
// The canonical edge set is edges; the adjacency list and the adjacency
// matrix are projections written in the same AddEdge call, so they always
// agree with each other and with the edge set.
type Graph struct {
	n    int
	seed int64
	p    float64

	vertices []*Vertex
	edges    []*Edge

	// adjList[u] lists neighbor names of u in insertion order.
	adjList [][]int
	// matrix[u][v] is the weight of {u,v}, 0 when absent.
	matrix [][]int64
}

// NewGraph creates a graph with n isolated vertices named 0..n-1.
// Complexity: O(n²) for the matrix allocation.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:        n,
		vertices: make([]*Vertex, n),
		adjList:  make([][]int, n),
		matrix:   make([][]int64, n),
	}
	cells := make([]int64, n*n) // one backing array for the whole matrix
	for i := 0; i < n; i++ {
		g.vertices[i] = newVertex(i)
		g.matrix[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
