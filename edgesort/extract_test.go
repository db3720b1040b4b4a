// SPDX-License-Identifier: MIT

package edgesort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
)

// TestExtract_ListAndMatrixAgree checks both adapters return every edge once.
func TestExtract_ListAndMatrixAgree(t *testing.T) {
	g := generated(t, 20, 13, 0.7)

	list, err := edgesort.FromList(g)
	require.NoError(t, err)
	matrix := edgesort.FromMatrix(g)

	assert.Len(t, list, g.Size())
	assert.Equal(t, values(list), values(matrix))
	assert.Equal(t, values(g.Edges()), values(list))

	// the list path hands out the canonical edge objects
	for i, e := range g.Edges() {
		assert.Same(t, e, list[i])
	}
}

func TestExtract_NoEdges(t *testing.T) {
	g := core.NewGraph(3)
	list, err := edgesort.FromList(g)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, edgesort.FromMatrix(g))

	_, err = edgesort.Extract(g, core.Representation(7))
	assert.ErrorIs(t, err, core.ErrUnknownRepresentation)
}

// TestExtract_RowMajorOrder uses a hand-built graph inserted out of order:
// the matrix path is always row-major, the list path follows neighbor order.
func TestExtract_RowMajorOrder(t *testing.T) {
	g := core.NewGraph(3)
	_, _ = g.AddEdge(1, 2, 5)
	_, _ = g.AddEdge(0, 2, 6)
	_, _ = g.AddEdge(0, 1, 7)

	m := edgesort.FromMatrix(g)
	assert.Equal(t, []core.Edge{{Left: 0, Right: 1, Weight: 7}, {Left: 0, Right: 2, Weight: 6}, {Left: 1, Right: 2, Weight: 5}}, values(m))

	l, err := edgesort.FromList(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Left: 0, Right: 2, Weight: 6}, {Left: 0, Right: 1, Weight: 7}, {Left: 1, Right: 2, Weight: 5}}, values(l))
}

// TestTimer_RecordsPerRepresentation runs one sorter over both views.
func TestTimer_RecordsPerRepresentation(t *testing.T) {
	g := generated(t, 30, 1, 0.5)
	timer := edgesort.NewTimer(edgesort.InsertionSorter{})

	fromMatrix, dm, err := timer.SortGraph(g, core.AdjacencyMatrix)
	require.NoError(t, err)
	fromList, dl, err := timer.SortGraph(g, core.AdjacencyList)
	require.NoError(t, err)

	assert.Equal(t, values(fromMatrix), values(fromList))
	assert.Equal(t, edgesort.Timings{List: dl, Matrix: dm}, timer.Timings())
	assert.Equal(t, edgesort.Insertion, timer.Sorter().Strategy())

	sorted, _, err := edgesort.SortedEdges(g, core.AdjacencyList, edgesort.Count)
	require.NoError(t, err)
	assert.Equal(t, values(fromList), values(sorted))
}
