// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

// ExampleKruskal runs Kruskal over the matrix view with count sort.
//
//	0—1 (4), 1—2 (2), 2—3 (5), 0—3 (4), 0—2 (1), 1—3 (3)
func ExampleKruskal() {
	g := core.NewGraph(4)
	g.AddEdge(0, 1, 4)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 5)
	g.AddEdge(0, 3, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 3)

	res, err := prim_kruskal.Kruskal(g, core.AdjacencyMatrix, edgesort.Count)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Println(e)
	}
	fmt.Println("total:", res.TotalWeight)
	// Output:
	// 0 2 weight = 1
	// 1 2 weight = 2
	// 1 3 weight = 3
	// total: 6
}

// ExamplePrim grows the tree of a pentagon from vertex 0.
//
//	0—1 (1), 1—2 (2), 2—3 (3), 3—4 (5), 0—4 (12)
func ExamplePrim() {
	g := core.NewGraph(5)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 4, 12)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 4, 5)

	res, err := prim_kruskal.Prim(g, core.AdjacencyList)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Println(e)
	}
	fmt.Println("total:", res.TotalWeight)
	// Output:
	// 0 1 weight = 1
	// 1 2 weight = 2
	// 2 3 weight = 3
	// 3 4 weight = 5
	// total: 11
}

func ExamplePrim_disconnected() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1)

	_, err := prim_kruskal.Prim(g, core.AdjacencyMatrix)
	fmt.Println(err)
	// Output: Prim(MATRIX): vertex 2 unreachable from 0: prim_kruskal: graph is disconnected
}
