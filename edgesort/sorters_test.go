// SPDX-License-Identifier: MIT

package edgesort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgesort"
)

// values dereferences edges so slices compare by content.
func values(edges []*core.Edge) []core.Edge {
	out := make([]core.Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}

	return out
}

// reference sorts a copy with the standard library as an oracle.
func reference(edges []*core.Edge) []*core.Edge {
	out := append([]*core.Edge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func newSorter(t *testing.T, s edgesort.Strategy) edgesort.Sorter {
	t.Helper()
	sorter, err := edgesort.New(s, edgesort.WithShuffleSeed(99))
	require.NoError(t, err)
	require.Equal(t, s, sorter.Strategy())

	return sorter
}

func generated(t *testing.T, n int, seed int64, p float64) *core.Graph {
	t.Helper()
	// the densities used below make a disconnected sample vanishingly rare;
	// the cap turns a bad pick into a failure instead of a hang
	res, err := builder.Generate(n, seed, p, builder.WithMaxAttempts(3))
	require.NoError(t, err)

	return res.Graph
}

// TestStrategies_AgreeWithReference sorts the same extracted edges with all
// three strategies over both representations.
func TestStrategies_AgreeWithReference(t *testing.T) {
	for _, tc := range []struct {
		n    int
		seed int64
		p    float64
	}{{5, 42, 1.0}, {12, 7, 0.8}, {40, 3, 0.5}} {
		g := generated(t, tc.n, tc.seed, tc.p)
		for _, rep := range core.Representations {
			extracted, err := edgesort.Extract(g, rep)
			require.NoError(t, err)
			want := values(reference(extracted))

			for _, s := range edgesort.Strategies {
				in, err := edgesort.Extract(g, rep)
				require.NoError(t, err)
				got := newSorter(t, s).Sort(in)

				assert.Equal(t, want, values(got), "%v over %v, n=%d", s, rep, tc.n)
				assert.True(t, edgesort.IsSorted(got))
			}
		}
	}
}

// TestStrategies_Idempotent resorts already sorted input.
func TestStrategies_Idempotent(t *testing.T) {
	g := generated(t, 15, 11, 0.8)
	sorted := reference(g.Edges())
	for _, s := range edgesort.Strategies {
		in := append([]*core.Edge(nil), sorted...)
		got := newSorter(t, s).Sort(in)
		assert.Equal(t, values(sorted), values(got), s.String())
	}
}

func TestStrategies_Empty(t *testing.T) {
	for _, s := range edgesort.Strategies {
		sorter := newSorter(t, s)
		got := sorter.Sort(nil)
		assert.NotNil(t, got, s.String())
		assert.Empty(t, got, s.String())
		assert.Empty(t, sorter.Sort([]*core.Edge{}), s.String())
	}
}

func TestStrategies_SingleEdge(t *testing.T) {
	for _, s := range edgesort.Strategies {
		e := core.NewEdge(0, 1, 4)
		got := newSorter(t, s).Sort([]*core.Edge{e})
		require.Len(t, got, 1)
		assert.Same(t, e, got[0])
	}
}

// TestCountSort_FullOrder sorts the path 0-1-2-3 weighted {1,1,2,3} given out of order.
func TestCountSort_FullOrder(t *testing.T) {
	a := core.NewEdge(2, 3, 1)
	b := core.NewEdge(0, 1, 1)
	c := core.NewEdge(1, 2, 2)
	d := core.NewEdge(0, 3, 3)
	in := []*core.Edge{c, a, d, b}

	got := edgesort.CountSorter{}.Sort(in)
	require.Len(t, got, 4)
	assert.True(t, edgesort.IsSorted(got))
	// equal weights fall back to the endpoints
	assert.Same(t, b, got[0])
	assert.Same(t, a, got[1])
	assert.Same(t, c, got[2])
	assert.Same(t, d, got[3])
	// input untouched
	assert.Equal(t, []*core.Edge{c, a, d, b}, in)

	// edges equal under Less keep their input order
	x, y := core.NewEdge(1, 2, 2), core.NewEdge(1, 2, 2)
	got = edgesort.CountSorter{}.Sort([]*core.Edge{d, x, a, y})
	assert.Same(t, x, got[1])
	assert.Same(t, y, got[2])
}

// TestStrategies_OutOfOrderNeighbors sorts a list view whose neighbor order
// is not ascending; every strategy must agree.
func TestStrategies_OutOfOrderNeighbors(t *testing.T) {
	g := core.NewGraph(4)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	want := []core.Edge{{Left: 0, Right: 1, Weight: 1}, {Left: 0, Right: 2, Weight: 1}, {Left: 2, Right: 3, Weight: 1}}

	for _, s := range edgesort.Strategies {
		got, _, err := edgesort.SortedEdges(g, core.AdjacencyList, s)
		require.NoError(t, err, s.String())
		assert.True(t, edgesort.IsSorted(got), s.String())
		assert.Equal(t, want, values(got), s.String())
	}
}

// TestCountSort_LargeWeights exercises the count array bound at max weight.
func TestCountSort_LargeWeights(t *testing.T) {
	in := []*core.Edge{core.NewEdge(0, 1, 1000), core.NewEdge(1, 2, 1), core.NewEdge(0, 2, 1000)}
	got := edgesort.CountSorter{}.Sort(in)
	assert.Equal(t, []int64{1, 1000, 1000}, []int64{got[0].Weight, got[1].Weight, got[2].Weight})
	assert.True(t, edgesort.IsSortedByWeight(got))
	assert.True(t, edgesort.IsSorted(got))
}

// TestQuickSort_ShuffledInputs sorts many random permutations, duplicates in weight included.
func TestQuickSort_ShuffledInputs(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	sorter := newSorter(t, edgesort.Quick)
	for round := 0; round < 50; round++ {
		m := 1 + r.Intn(60)
		in := make([]*core.Edge, m)
		for i := range in {
			in[i] = core.NewEdge(i, i+1+r.Intn(5), 1+r.Int63n(4))
		}
		want := values(reference(in))
		got := sorter.Sort(in)
		assert.Equal(t, want, values(got))
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]edgesort.Strategy{
		"insertion":      edgesort.Insertion,
		"INSERTION SORT": edgesort.Insertion,
		"count":          edgesort.Count,
		"Count Sort":     edgesort.Count,
		"quick":          edgesort.Quick,
		"QUICKSORT":      edgesort.Quick,
	} {
		got, err := edgesort.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := edgesort.ParseStrategy("bogo")
	assert.ErrorIs(t, err, edgesort.ErrUnknownStrategy)
	_, err = edgesort.New(edgesort.Strategy(9))
	assert.ErrorIs(t, err, edgesort.ErrUnknownStrategy)
}
