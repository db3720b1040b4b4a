// SPDX-License-Identifier: MIT

// Package mstlab compares minimum spanning tree algorithms on random
// connected graphs.
//
// A run generates an undirected graph over n vertices in which every pair
// is connected with probability p and weighted uniformly in [1, n],
// regenerating until a depth-first walk from vertex 0 reaches every vertex.
// The same edge set is then read through two projections, an adjacency list
// and an adjacency matrix, and
//
//   - sorted by insertion sort, count sort and quicksort;
//   - spanned by Kruskal's algorithm for each (sort × representation);
//   - spanned by Prim's algorithm with an indexed min-heap for each representation.
//
// Subpackages:
//
//	core/         Graph, Vertex, Edge; one edge set, list and matrix views
//	dfs/          reachability walk with a caller-owned visited set
//	builder/      Generate(n, seed, p): sample until connected
//	edgesort/     the three sorts, extraction per representation, timing
//	unionfind/    disjoint set with path compression and union by rank
//	pq/           indexed binary min-heap with decrease-key
//	prim_kruskal/ Kruskal, Prim, Compute, Verify
//	converters/   export to gonum mat and graph types
//	config/       input file parsing and viper-backed settings
//	report/       console layout of a run
//	cmd/mst/      the command-line entry point
//
// Quick start:
//
//	res, _ := builder.Generate(100, 42, 0.1)
//	tree, _ := prim_kruskal.Kruskal(res.Graph, core.AdjacencyMatrix, edgesort.Count)
//	fmt.Println(tree.TotalWeight)
package mstlab
