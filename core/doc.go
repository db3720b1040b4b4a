// SPDX-License-Identifier: MIT

// Package core defines the Graph, Vertex and Edge types shared by every
// other package of mstlab.
//
// A Graph is undirected, weighted and simple: n vertices named 0..n-1,
// positive integer weights, no self-loops and at most one edge per pair.
// Each connected pair is represented by exactly one *Edge, which is
//
//   - stored in the canonical edge slice (Edges),
//   - attached to both endpoints (Vertex.Edges, Vertex.Edge),
//   - mirrored into the adjacency-list view (Neighbors, AdjacencyList),
//   - mirrored into the symmetric adjacency-matrix view (Row, Weight, AdjacencyMatrix).
//
// All four are written by AddEdge in one step, so the list and the matrix
// are always consistent projections of the same edge set.
//
// Edge ordering:
//
//	a < b  iff  a.Weight < b.Weight,
//	            or weights tie and a.Left < b.Left,
//	            or both tie and a.Right < b.Right.
//
// Edges keep Left < Right, so the order is total over a simple graph.
//
// Graph is not safe for concurrent mutation; generation, sorting and the
// MST algorithms run one after another on a single goroutine.
//
// Quick example:
//
//	0───1
//	│ ╲ │
//	3───2
//
//	g := core.NewGraph(4)
//	g.AddEdge(0, 1, 3)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(0, 2, 4)
//	...
package core
