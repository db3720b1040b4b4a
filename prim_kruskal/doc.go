// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the Minimum Spanning Tree of a connected,
// undirected, positively weighted *core.Graph with two algorithms.
//
// Kruskal(g, rep, strategy, opts...)
//
//   - Extract the edge set from the chosen representation (package edgesort),
//     sort it with the chosen strategy, then add edges in that order, skipping
//     any whose endpoints are already in one component (package unionfind).
//   - Stops as soon as n-1 edges are accepted. Running out of edges first
//     means the graph was not connected: ErrDisconnected.
//   - Time: extraction + sort + O(m·α(n)).
//
// Prim(g, rep, opts...)
//
//   - Every vertex enters an indexed min-heap (package pq) with priority
//     +Inf, except the root (default 0) with priority 0.
//   - Each extraction settles a vertex and emits the edge to its recorded
//     parent. Its neighbors still in the heap get their priority lowered
//     (decrease-key) when the connecting edge is lighter.
//   - The list path walks Neighbors(u) and looks the edge up on the vertex;
//     the matrix path scans Row(u).
//   - An extracted vertex still at +Inf was never reached: ErrDisconnected.
//   - Time: O((n + m) log n) on the list, O(n² + m log n) on the matrix.
//
// Both return a *Result holding the tree edges, the total weight and the
// elapsed wall-clock time. Verify replays a Result against its graph.
//
// Errors:
//
//	ErrInvalidGraph    - nil graph or no vertices.
//	ErrDisconnected    - no spanning tree exists.
//	ErrUnknownMethod   - Compute with a method other than MethodKruskal/MethodPrim.
//	ErrRootOutOfRange  - Prim root outside [0, n).
//	core.ErrUnknownRepresentation, edgesort.ErrUnknownStrategy - bad selectors.
package prim_kruskal
