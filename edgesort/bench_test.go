// SPDX-License-Identifier: MIT

package edgesort_test

import (
	"testing"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
)

// benchmarkSort measures extract+sort for one (strategy, representation) on
// a 300-vertex graph with p = 0.2, built once outside the timer.
func benchmarkSort(b *testing.B, s edgesort.Strategy, rep core.Representation) {
	res, err := builder.Generate(300, 42, 0.2)
	if err != nil {
		b.Fatal(err)
	}
	sorter, err := edgesort.New(s, edgesort.WithShuffleSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	timer := edgesort.NewTimer(sorter)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = timer.SortGraph(res.Graph, rep)
	}
}

func BenchmarkInsertion_List(b *testing.B) { benchmarkSort(b, edgesort.Insertion, core.AdjacencyList) }
func BenchmarkInsertion_Matrix(b *testing.B) {
	benchmarkSort(b, edgesort.Insertion, core.AdjacencyMatrix)
}
func BenchmarkCount_List(b *testing.B)   { benchmarkSort(b, edgesort.Count, core.AdjacencyList) }
func BenchmarkCount_Matrix(b *testing.B) { benchmarkSort(b, edgesort.Count, core.AdjacencyMatrix) }
func BenchmarkQuick_List(b *testing.B)   { benchmarkSort(b, edgesort.Quick, core.AdjacencyList) }
func BenchmarkQuick_Matrix(b *testing.B) { benchmarkSort(b, edgesort.Quick, core.AdjacencyMatrix) }
