// SPDX-License-Identifier: MIT

// Package report renders a run to an io.Writer in the fixed console layout:
//
//	TEST: n=5, seed=42, p=1.0
//	Time to generate the graph: 0 milliseconds
//	(adjacency matrix, adjacency list and DFS info, small graphs only)
//	===================================
//	SORTED EDGES WITH MATRIX USING INSERTION SORT
//	0 1 weight = 3
//	...
//
//	Total weight = 42
//	Runtime: 0 milliseconds
//
// Per-edge lines and the graph dumps are printed only when the graph has at
// most MaxPrintVertices vertices (10 by default). Write errors are sticky:
// the first one stops further output and is returned by Err.
package report
