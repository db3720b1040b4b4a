// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// ExampleGraph builds a triangle and reads it back through both views.
func ExampleGraph() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, 3)

	fmt.Println("list:", g.AdjacencyList())
	fmt.Println("matrix:", g.AdjacencyMatrix())
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// list: [[1 2] [0 2] [1 0]]
	// matrix: [[0 2 3] [2 0 1] [3 1 0]]
	// 0 1 weight = 2
	// 1 2 weight = 1
	// 0 2 weight = 3
}
